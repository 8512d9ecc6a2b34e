package chat

import (
	"context"
	"log"
	"time"

	"github.com/adesai/chatwave/backend/internal/model/chat"
	"github.com/adesai/chatwave/backend/internal/service/ai"
)

// respondGroup drives a group response batch: a shuffled cast of members
// each takes a full turn in sequence, every later responder seeing the
// earlier ones' messages in its history. One member's failure never
// aborts the batch.
func (s *Service) respondGroup(ctx context.Context, group chat.Chat, history []chat.Message) {
	sequence := s.buildResponseSequence(group.MemberIDs)
	if len(sequence) == 0 {
		return
	}

	current := append([]chat.Message(nil), history...)

	for _, responderID := range sequence {
		delay := groupReactionMin + s.randDuration(groupReactionSpread)
		if err := s.sleep.Sleep(ctx, delay); err != nil {
			return
		}

		persona, ok := s.chats.Find(responderID)
		if !ok || persona.IsGroup {
			log.Printf("[chat] group %s: skipping unknown member %s", group.ID, responderID)
			continue
		}

		groupCtx := &ai.GroupContext{
			GroupName:    group.Name,
			OtherMembers: s.memberNames(group.MemberIDs, responderID),
		}

		err := s.respondAs(ctx, group.ID, persona, current, groupCtx, groupChatTiming, func(m chat.Message) {
			current = append(current, m)
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[chat] group %s: response from %s failed: %v", group.ID, persona.Name, err)
		}
	}
}

// buildResponseSequence shuffles the member list uniformly, then with
// probability extraResponderChance inserts one duplicate responder at a
// random position, so someone occasionally sends a second message.
func (s *Service) buildResponseSequence(memberIDs []string) []string {
	if len(memberIDs) == 0 {
		return nil
	}

	seq := append([]string(nil), memberIDs...)

	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	s.rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})

	if s.rng.Float64() < extraResponderChance {
		extra := memberIDs[s.rng.Intn(len(memberIDs))]
		idx := s.rng.Intn(len(seq) + 1)
		seq = append(seq[:idx], append([]string{extra}, seq[idx:]...)...)
	}

	return seq
}

func (s *Service) memberNames(memberIDs []string, excludeID string) []string {
	var names []string
	for _, id := range memberIDs {
		if id == excludeID {
			continue
		}
		if persona, ok := s.chats.Find(id); ok {
			names = append(names, persona.Name)
		}
	}
	return names
}

func (s *Service) randDuration(spread time.Duration) time.Duration {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return time.Duration(s.rng.Int63n(int64(spread)))
}
