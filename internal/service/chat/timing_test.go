package chat

import (
	"testing"
	"time"
)

func TestTypingDelayClamps(t *testing.T) {
	cases := []struct {
		name    string
		profile timingProfile
		chars   int
		want    time.Duration
	}{
		{"single short clamps up", singleChatTiming, 5, 600 * time.Millisecond},
		{"single proportional", singleChatTiming, 40, 1000 * time.Millisecond},
		{"single long clamps down", singleChatTiming, 500, 2 * time.Second},
		{"group short clamps up", groupChatTiming, 5, 500 * time.Millisecond},
		{"group proportional", groupChatTiming, 40, 800 * time.Millisecond},
		{"group long clamps down", groupChatTiming, 500, 1500 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.profile.typingDelay(tc.chars); got != tc.want {
				t.Errorf("typingDelay(%d) = %v, want %v", tc.chars, got, tc.want)
			}
		})
	}
}
