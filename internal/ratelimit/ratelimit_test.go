package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllow(t *testing.T) {
	l := NewLimiter(time.Hour, 2)
	now := time.Now()

	assert.True(t, l.allowAt("a@x.com", now))
	assert.True(t, l.allowAt("a@x.com", now))
	assert.False(t, l.allowAt("a@x.com", now))

	// other keys have their own bucket
	assert.True(t, l.allowAt("b@x.com", now))

	// one token refills per interval
	later := now.Add(90 * time.Minute)
	assert.True(t, l.allowAt("a@x.com", later))
	assert.False(t, l.allowAt("a@x.com", later))
}

func TestLimiterSweep(t *testing.T) {
	l := NewLimiter(time.Minute, 1)
	now := time.Now()

	l.allowAt("a@x.com", now)
	l.allowAt("b@x.com", now.Add(5*time.Minute))
	assert.Equal(t, 2, l.Len())

	l.sweep(now.Add(5 * time.Minute))
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.allowAt("a@x.com", now.Add(5*time.Minute)))
}
