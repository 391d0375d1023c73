package utils

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether an OpenAI call error looks transient enough to
// retry once. Per-call deadline expiry counts as transient: the service is
// slow, not broken. Anything else is treated as a hard failure.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "context deadline exceeded") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// TitleFromSlug derives a display name from a page slug: "/" becomes
// "Home", "/about" becomes "About", "/products" becomes "Products".
func TitleFromSlug(slug string) string {
	if slug == "/" || slug == "" {
		return "Home"
	}
	name := strings.Trim(slug, "/")
	name = strings.ReplaceAll(name, "-", " ")
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Truncate trims s to at most max runes, appending an ellipsis when
// something was cut. Used for SEO descriptions.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// UniqueStrings removes duplicates (case-insensitive) preserving first-seen
// order, and drops empty entries.
func UniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
