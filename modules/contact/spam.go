package contact

import (
	"strconv"
	"time"
)

// Default plausible window for the client-side submission timestamp. A form
// filled in under a second or held open for more than a day is suspicious.
const (
	defaultMinFillTime = 1 * time.Second
	defaultMaxFillTime = 24 * time.Hour
)

// honeypotTripped reports whether the hidden field arrived non-empty.
// Humans never see the field, so any value at all is a bot signature.
func honeypotTripped(value string) bool {
	return value != ""
}

// timestampSuspicious evaluates the submission timestamp against the
// [minFill, maxFill] window. Missing or non-numeric values are accepted
// without penalty; this is a detection signal, not a gate.
func timestampSuspicious(value string, now time.Time, minFill, maxFill time.Duration) (elapsed time.Duration, suspicious bool) {
	if value == "" {
		return 0, false
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	elapsed = now.Sub(time.Unix(ts, 0))
	return elapsed, elapsed < minFill || elapsed > maxFill
}
