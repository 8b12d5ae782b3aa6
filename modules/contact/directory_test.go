package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func testRecipients() map[string]string {
	return map[string]string{
		"administration":   "administration@example.com",
		"human-resources":  "hr@example.com",
		"information":      "info@example.com",
		"complains-claims": "management@example.com",
		"sales":            "sales@example.com",
		"providers":        "administration@example.com",
	}
}

func TestDirectoryResolve(t *testing.T) {
	t.Parallel()

	dir := NewDirectory(testRecipients(), "info@example.com")

	t.Run("every known category resolves to a valid address", func(t *testing.T) {
		t.Parallel()

		for _, category := range Categories {
			addr := dir.Resolve(category)
			assert.True(t, validator.IsEmail(addr), "category %q resolved to %q", category, addr)
		}
	})

	t.Run("unknown category falls back to default", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "info@example.com", dir.Resolve("marketing"))
		assert.Equal(t, "info@example.com", dir.Resolve(""))
	})

	t.Run("immune to mutation of the source map", func(t *testing.T) {
		t.Parallel()

		source := testRecipients()
		dir := NewDirectory(source, "info@example.com")
		source["sales"] = "hijacked@evil.example"

		assert.Equal(t, "sales@example.com", dir.Resolve("sales"))
	})
}
