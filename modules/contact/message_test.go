package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeMessage(t *testing.T) {
	t.Parallel()

	t.Run("labels every section in fixed order", func(t *testing.T) {
		t.Parallel()

		body := composeMessage(sanitized{
			Name:     "Jane Doe",
			Company:  "Acme",
			Phone:    "+1 555 123",
			Email:    "jane@acme.com",
			Message:  "Hello there",
			Category: "sales",
		}, RequestMeta{
			ClientIP:  "203.0.113.7",
			Referer:   "https://example.com/contact.html",
			UserAgent: "Mozilla/5.0",
		})

		expected := "Name: Jane Doe\n\n" +
			"Company: Acme\n\n" +
			"Phone: +1 555 123\n\n" +
			"Email: jane@acme.com\n\n" +
			"Message: Hello there\n\n" +
			"Category: sales\n\n" +
			"IP: 203.0.113.7\n\n" +
			"Referer: https://example.com/contact.html\n\n" +
			"User Agent: Mozilla/5.0\n\n"
		assert.Equal(t, expected, body)
	})

	t.Run("placeholders for missing optional values", func(t *testing.T) {
		t.Parallel()

		body := composeMessage(sanitized{
			Name:     "Jane Doe",
			Company:  "Acme",
			Email:    "jane@acme.com",
			Category: "sales",
		}, RequestMeta{ClientIP: "203.0.113.7"})

		assert.Contains(t, body, "Phone: Not provided\n\n")
		assert.Contains(t, body, "Message: Not provided\n\n")
		assert.Contains(t, body, "Referer: N/A\n\n")
		assert.Contains(t, body, "User Agent: N/A\n\n")
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		t.Parallel()

		clean := sanitized{Name: "Jane", Company: "Acme", Email: "jane@acme.com", Category: "sales"}
		meta := RequestMeta{ClientIP: "203.0.113.7"}
		assert.Equal(t, composeMessage(clean, meta), composeMessage(clean, meta))
	})
}
