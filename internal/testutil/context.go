package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a test that passes a non-positive timeout. The stub
// backend answers in milliseconds, so this only trips on a hang.
const DefaultTimeout = 10 * time.Second

// deadlineGrace is kept free before the test binary's own deadline so a
// timed-out context still leaves room for t.Fatalf output.
const deadlineGrace = time.Second

// Context returns a context cancelled at cleanup or after timeout, whichever
// comes first, never outliving the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline := time.Now().Add(timeout)
	if testDeadline, ok := t.Deadline(); ok && testDeadline.Add(-deadlineGrace).Before(deadline) {
		deadline = testDeadline.Add(-deadlineGrace)
	}
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	t.Cleanup(cancel)
	return ctx
}
