package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	assert.False(t, ShouldRetry(nil))
	assert.False(t, ShouldRetry(errors.New("invalid api key")))
	assert.True(t, ShouldRetry(errors.New("503 Service Unavailable")))
	assert.True(t, ShouldRetry(errors.New("request timeout exceeded")))
	assert.True(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 429}))
	assert.True(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 502}))
	assert.False(t, ShouldRetry(&openai.APIError{HTTPStatusCode: 401}))
}

func TestShouldRetry_DeadlineExceeded(t *testing.T) {
	assert.True(t, ShouldRetry(context.DeadlineExceeded))
	assert.True(t, ShouldRetry(fmt.Errorf("openai chat completion failed: %w", context.DeadlineExceeded)))
	assert.True(t, ShouldRetry(errors.New("Post \"https://api.openai.com\": context deadline exceeded")))
	assert.False(t, ShouldRetry(context.Canceled))
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "Home", TitleFromSlug("/"))
	assert.Equal(t, "Home", TitleFromSlug(""))
	assert.Equal(t, "About", TitleFromSlug("/about"))
	assert.Equal(t, "Products", TitleFromSlug("/products"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "trimmed", Truncate("  trimmed  ", 20))

	long := Truncate("abcdefghij", 5)
	assert.LessOrEqual(t, len([]rune(long)), 5)
	assert.Contains(t, long, "…")
}

func TestUniqueStrings(t *testing.T) {
	got := UniqueStrings([]string{"Lisbon", "lisbon", "", "Porto", "LISBON"})
	assert.Equal(t, []string{"Lisbon", "Porto"}, got)
}
