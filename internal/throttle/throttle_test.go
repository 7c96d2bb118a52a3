package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowRespectsBurst(t *testing.T) {
	l := NewLimiter(1, 2)
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow(), "third call exceeds the burst of 2")
}

func TestWaitUnblocksWithinDeadline(t *testing.T) {
	l := NewLimiter(1000, 1)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, l.Wait(ctx))
}

func TestWaitReturnsErrorOnExpiredContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	l.Allow() // drain the single burst token

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx))
}
