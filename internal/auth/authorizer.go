package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/model"
)

var (
	ErrUnauthorized = errors.New("auth: missing or invalid credentials")
	ErrForbidden    = errors.New("auth: editor or admin role required")
)

type Kind string

const (
	KindCron    Kind = "cron"
	KindService Kind = "service"
	KindUser    Kind = "user"
)

// Principal identifies an authorized caller. UserID is set only for
// interactive (user token) callers.
type Principal struct {
	Kind   Kind
	UserID string
}

type RoleStore interface {
	GetUserRoles(userID string) ([]string, error)
}

type Authorizer struct {
	cronSecret string
	serviceKey string
	jwtSecret  []byte
	roles      RoleStore
}

func NewAuthorizer(cronSecret, serviceKey, jwtSecret string, roles RoleStore) *Authorizer {
	return &Authorizer{
		cronSecret: cronSecret,
		serviceKey: serviceKey,
		jwtSecret:  []byte(jwtSecret),
		roles:      roles,
	}
}

// Authorize evaluates the capability checks in strict precedence order,
// first match wins: shared cron secret, then the service credential, then a
// user token whose subject holds an admin or editor role.
func (a *Authorizer) Authorize(cronSecret, bearerToken string) (*Principal, error) {
	if secretsMatch(a.cronSecret, cronSecret) {
		return &Principal{Kind: KindCron}, nil
	}

	if secretsMatch(a.serviceKey, bearerToken) {
		return &Principal{Kind: KindService}, nil
	}

	if bearerToken == "" {
		return nil, ErrUnauthorized
	}

	token, err := jwt.Parse(bearerToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	userID, err := token.Claims.GetSubject()
	if err != nil || userID == "" {
		return nil, ErrUnauthorized
	}

	roles, err := a.roles.GetUserRoles(userID)
	if err != nil {
		return nil, fmt.Errorf("auth: role lookup: %w", err)
	}

	for _, role := range roles {
		if role == model.RoleAdmin || role == model.RoleEditor {
			return &Principal{Kind: KindUser, UserID: userID}, nil
		}
	}

	return nil, ErrForbidden
}

func secretsMatch(expected, presented string) bool {
	if expected == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) == 1
}
