package model

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"

	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// Article is a persisted, publishable article row. Rows are created by the
// publication pipeline only; the rewrite and image stages never touch the store.
type Article struct {
	ID            int64
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	CategoryID    int64
	AuthorID      *string
	Status        string
	IsBreaking    bool
	IsFeatured    bool
	ReadTime      int
	Tags          []string
	PublishedAt   time.Time
}

type Category struct {
	ID   int64
	Name string
	Slug string
}

type UserRole struct {
	ID     int64
	UserID string
	Role   string
}
