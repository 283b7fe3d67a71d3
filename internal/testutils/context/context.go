// contexts bounded by tests.
package context

import (
	"context"
	"testing"
	"time"
)

// WithTest returns a context which is canceled when t ends.
//
// When t has a deadline, the context expires 1 second before that,
// to be able to clean-up resources.
func WithTest(ctx context.Context, t *testing.T) context.Context {
	var cancel func()
	if deadline, ok := t.Deadline(); ok {
		ctx, cancel = context.WithDeadline(ctx, deadline.Add(-time.Second))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	t.Cleanup(cancel)
	return ctx
}
