package telegram

import (
	"sync"

	"shift-tracker/internal/delivery/telegram/flows"
)

type pendingKind int

const (
	pendingField pendingKind = iota + 1
	pendingTags
	pendingCoworker
	pendingParty
)

// pending is a question about an existing shift awaiting a text reply.
type pending struct {
	kind    pendingKind
	shiftID string
	field   flows.Field
}

type session struct {
	draft   *flows.Draft
	pending *pending
}

// sessions tracks what each chat is in the middle of. Updates for different
// chats may be handled concurrently.
type sessions struct {
	mu     sync.Mutex
	byChat map[int64]session
}

func newSessions() *sessions {
	return &sessions{byChat: make(map[int64]session)}
}

func (s *sessions) get(chatID int64) session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byChat[chatID]
}

// updateDraft applies fn to the chat's draft while holding the lock and
// returns a copy of the result. A draft that fn completes is taken out of
// the session, so only one caller ever saves it. ok is false when the chat
// has no draft.
func (s *sessions) updateDraft(chatID int64, fn func(*flows.Draft) error) (d flows.Draft, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.byChat[chatID].draft
	if cur == nil {
		return flows.Draft{}, false, nil
	}
	err = fn(cur)
	if cur.Done() {
		delete(s.byChat, chatID)
	}
	return *cur, true, err
}

func (s *sessions) setDraft(chatID int64, d *flows.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byChat[chatID] = session{draft: d}
}

func (s *sessions) setPending(chatID int64, p *pending) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byChat[chatID] = session{pending: p}
}

func (s *sessions) clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byChat, chatID)
}
