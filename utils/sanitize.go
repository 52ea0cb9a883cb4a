package utils

import "github.com/microcosm-cc/bluemonday"

var (
	contentPolicy = bluemonday.UGCPolicy()
	plainPolicy   = bluemonday.StrictPolicy()
)

// Sanitize cleans HTML content to prevent XSS; safe markup is kept.
func Sanitize(input string) string {
	return contentPolicy.Sanitize(input)
}

// SanitizePlain strips all markup. Used for names and titles, which are plain text.
func SanitizePlain(input string) string {
	return plainPolicy.Sanitize(input)
}
