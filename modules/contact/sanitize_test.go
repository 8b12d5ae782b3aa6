package contact

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	t.Run("trims and escapes markup", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "&lt;b&gt;Acme&lt;/b&gt;", sanitizeText("  <b>Acme</b>  ", 100))
	})

	t.Run("strips control characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Acme", sanitizeText("Ac\x00\x1bme", 100))
	})

	t.Run("idempotent for values within the cap", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"Jane Doe",
			`<script>alert("x")</script>`,
			"Tom & Jerry's \"show\"",
			"  padded  ",
			"日本語テキスト",
		}
		for _, input := range inputs {
			once := sanitizeText(input, 100)
			twice := sanitizeText(once, 100)
			assert.Equal(t, once, twice, "input %q", input)
		}
	})

	t.Run("truncates at exactly maxLen codepoints", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("é", 51)
		require.Equal(t, 51, utf8.RuneCountInString(input))

		out := sanitizeText(input, 50)
		assert.Equal(t, 50, utf8.RuneCountInString(out))
		assert.True(t, utf8.ValidString(out))
		assert.Equal(t, strings.Repeat("é", 50), out)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, sanitizeText("", 100))
		assert.Empty(t, sanitizeText("   ", 100))
	})
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	t.Run("normalizes a valid address", func(t *testing.T) {
		t.Parallel()

		got, err := validateEmail("  Jane@Acme.COM ")
		require.NoError(t, err)
		assert.Equal(t, "jane@acme.com", got)
	})

	t.Run("header injection markers are a security violation", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{
			"attacker@x.com\r\nBcc:victim@y.com",
			"attacker@x.com\nX-Spam: yes",
			"attacker\x00@x.com",
		} {
			_, err := validateEmail(input)
			assert.ErrorIs(t, err, ErrSecurityViolation, "input %q", input)
		}
	})

	t.Run("syntactically invalid addresses fail validation", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"", "jane", "jane@acme", "jane@acme.c", "@acme.com"} {
			_, err := validateEmail(input)
			assert.ErrorIs(t, err, ErrValidationFailed, "input %q", input)
		}
	})
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	t.Run("empty means not provided", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, validatePhone(""))
	})

	t.Run("keeps allowed characters only", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "+1 (555) 123-4567", validatePhone(" +1 (555) 123-4567 "))
		assert.Equal(t, "5551234567", validatePhone("call5551234567now"))
	})

	t.Run("caps to 30 codepoints", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("1", 40)
		assert.Equal(t, 30, utf8.RuneCountInString(validatePhone(long)))
	})
}

func TestSanitizeSubmission(t *testing.T) {
	t.Parallel()

	valid := Submission{
		Name:     "Jane Doe",
		Company:  "Acme",
		Phone:    "+1 555 123",
		Email:    "jane@acme.com",
		Message:  "Hello",
		Category: "sales",
	}

	t.Run("valid submission passes clean", func(t *testing.T) {
		t.Parallel()

		clean, injection, err := sanitizeSubmission(valid)
		require.NoError(t, err)
		assert.False(t, injection)
		assert.Equal(t, "Jane Doe", clean.Name)
		assert.Equal(t, "jane@acme.com", clean.Email)
		assert.Equal(t, "sales", clean.Category)
	})

	t.Run("accumulates all field failures", func(t *testing.T) {
		t.Parallel()

		_, injection, err := sanitizeSubmission(Submission{
			Name:     "J",
			Company:  "",
			Email:    "nope",
			Category: "unknown-code",
		})
		require.Error(t, err)
		assert.False(t, injection)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("name"))
		assert.True(t, verrs.Has("company"))
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("category"))
	})

	t.Run("reports header injection", func(t *testing.T) {
		t.Parallel()

		sub := valid
		sub.Email = "attacker@x.com\r\nBcc:victim@y.com"
		_, injection, err := sanitizeSubmission(sub)
		require.Error(t, err)
		assert.True(t, injection)
	})

	t.Run("rejects category outside the closed set even when well-formed", func(t *testing.T) {
		t.Parallel()

		sub := valid
		sub.Category = "marketing"
		_, _, err := sanitizeSubmission(sub)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("category"))
	})
}
