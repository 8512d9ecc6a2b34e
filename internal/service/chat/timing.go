package chat

import (
	"context"
	"time"
)

// Sleeper abstracts timed suspensions so tests can run the response
// flows without wall-clock waits.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// timingProfile models human typing speed: a per-character cost clamped
// to keep the wait responsive, plus the pause between consecutive sends.
type timingProfile struct {
	perChar   time.Duration
	minTyping time.Duration
	maxTyping time.Duration
	sendPause time.Duration
}

var (
	singleChatTiming = timingProfile{
		perChar:   25 * time.Millisecond,
		minTyping: 600 * time.Millisecond,
		maxTyping: 2 * time.Second,
		sendPause: 800 * time.Millisecond,
	}
	groupChatTiming = timingProfile{
		perChar:   20 * time.Millisecond,
		minTyping: 500 * time.Millisecond,
		maxTyping: 1500 * time.Millisecond,
		sendPause: 600 * time.Millisecond,
	}
)

// typingDelay returns the simulated typing time for a fragment of n
// characters.
func (p timingProfile) typingDelay(n int) time.Duration {
	d := time.Duration(n) * p.perChar
	if d < p.minTyping {
		return p.minTyping
	}
	if d > p.maxTyping {
		return p.maxTyping
	}
	return d
}

// Pre-response reaction window for group members: each waits a random
// duration in [groupReactionMin, groupReactionMin+groupReactionSpread)
// before starting to type.
const (
	groupReactionMin    = 1500 * time.Millisecond
	groupReactionSpread = 2500 * time.Millisecond
)

// extraResponderChance is the probability that one group member replies
// a second time in the same batch.
const extraResponderChance = 0.2
