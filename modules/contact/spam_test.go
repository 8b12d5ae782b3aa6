package contact

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoneypotTripped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		tripped bool
	}{
		{"empty field is human", "", false},
		{"filled field is a bot", "http://spam.example.com", true},
		{"whitespace-only still trips", "   ", true},
		{"single character trips", "x", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.tripped, honeypotTripped(tt.value))
		})
	}
}

func TestTimestampSuspicious(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)

	tests := []struct {
		name       string
		value      string
		suspicious bool
	}{
		{"missing timestamp accepted", "", false},
		{"non-numeric timestamp accepted", "yesterday", false},
		{"plausible fill time", fmt.Sprintf("%d", now.Unix()-120), false},
		{"exactly one second", fmt.Sprintf("%d", now.Unix()-1), false},
		{"exactly one day", fmt.Sprintf("%d", now.Unix()-86400), false},
		{"instant submission", fmt.Sprintf("%d", now.Unix()), true},
		{"timestamp from the future", fmt.Sprintf("%d", now.Unix()+3600), true},
		{"form held open for two days", fmt.Sprintf("%d", now.Unix()-172800), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, suspicious := timestampSuspicious(tt.value, now, defaultMinFillTime, defaultMaxFillTime)
			assert.Equal(t, tt.suspicious, suspicious)
		})
	}
}
