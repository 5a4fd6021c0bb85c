package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"newsdesk/pkg/image"
)

type fakeImageGenerator struct {
	url string
	err error
}

func (f *fakeImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.url, f.err
}

func newImageRouter(g *fakeImageGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewImageHandler(g)

	router := gin.New()
	router.POST("/images/generate", h.Generate)
	return router
}

func postImage(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/images/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestImageGenerate_Success(t *testing.T) {
	router := newImageRouter(&fakeImageGenerator{url: "https://cdn.example.com/header.png"})

	w := postImage(router, `{"prompt":"a newsroom at dusk","slug":"markets-rally"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ImageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	assert.Equal(t, "https://cdn.example.com/header.png", resp.ImageURL)
	assert.Equal(t, false, resp.Placeholder)
}

func TestImageGenerate_RequiresPrompt(t *testing.T) {
	router := newImageRouter(&fakeImageGenerator{})

	assert.Equal(t, http.StatusBadRequest, postImage(router, `{"slug":"markets-rally"}`).Code)
	assert.Equal(t, http.StatusBadRequest, postImage(router, "{not json").Code)
}

func TestImageGenerate_QuotaExhausted(t *testing.T) {
	router := newImageRouter(&fakeImageGenerator{err: image.ErrQuotaExhausted})

	w := postImage(router, `{"prompt":"a newsroom at dusk"}`)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestImageGenerate_RateLimited(t *testing.T) {
	router := newImageRouter(&fakeImageGenerator{err: image.ErrRateLimited})

	w := postImage(router, `{"prompt":"a newsroom at dusk"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestImageGenerate_OtherFailureServesPlaceholder(t *testing.T) {
	router := newImageRouter(&fakeImageGenerator{err: context.DeadlineExceeded})

	w := postImage(router, `{"prompt":"a newsroom at dusk"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ImageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	assert.Equal(t, true, resp.Placeholder)
	assert.Equal(t, image.Placeholder("", "a newsroom at dusk"), resp.ImageURL)

	if strings.HasPrefix(resp.ImageURL, "data:") {
		t.Errorf("placeholder must not be a data URI: %q", resp.ImageURL)
	}
}
