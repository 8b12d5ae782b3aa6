package contact

import (
	"fmt"
	"strings"
)

const (
	notProvided  = "Not provided"
	notAvailable = "N/A"
)

// composeMessage builds the deterministic plain-text body handed to the
// email transport. It is a pure function of its inputs; every optional
// field gets a fixed placeholder so the section layout never varies.
func composeMessage(clean sanitized, meta RequestMeta) string {
	var b strings.Builder

	section := func(label, value, placeholder string) {
		if value == "" {
			value = placeholder
		}
		fmt.Fprintf(&b, "%s: %s\n\n", label, value)
	}

	section("Name", clean.Name, notProvided)
	section("Company", clean.Company, notProvided)
	section("Phone", clean.Phone, notProvided)
	section("Email", clean.Email, notProvided)
	section("Message", clean.Message, notProvided)
	section("Category", clean.Category, notProvided)
	section("IP", meta.ClientIP, notAvailable)
	section("Referer", meta.Referer, notAvailable)
	section("User Agent", meta.UserAgent, notAvailable)

	return b.String()
}
