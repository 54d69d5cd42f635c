package testutil

import (
	"testing"
	"time"
)

// Eventually calls cond every interval until it reports true, failing the
// test with the formatted message once timeout has passed. cond is checked
// one last time at the deadline.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, format string, args ...any) {
	t.Helper()
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			if cond() {
				return
			}
			if format == "" {
				format = "condition not met within %s"
				args = []any{timeout}
			}
			t.Fatalf(format, args...)
		}
		time.Sleep(interval)
	}
}
