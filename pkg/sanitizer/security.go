package sanitizer

import "html"

// EscapeHTML escapes HTML special characters to prevent XSS when the value is
// later rendered in a browser or HTML email client.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML unescapes HTML entities.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// NormalizeHTMLEscape produces a canonically escaped value. Unlike EscapeHTML
// it is idempotent: already-escaped input is decoded first, so entities are
// never double-encoded.
func NormalizeHTMLEscape(s string) string {
	return html.EscapeString(html.UnescapeString(s))
}
