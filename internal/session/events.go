package session

// EventType distinguishes display-surface updates.
type EventType string

const (
	EventMessage EventType = "message"
	EventTyping  EventType = "typing"
)

// Event is pushed to subscribers whenever the log or the typing indicator changes.
type Event struct {
	Type          EventType `json:"type"`
	Message       *Message  `json:"message,omitempty"`
	AwaitingReply bool      `json:"awaitingReply"`
}

const defaultSubscriberBuffer = 16

// Subscribe registers a listener for session events. The channel is closed when the
// session closes or cancel is called. Events are dropped for subscribers that fall
// more than buffer events behind.
func (s *Session) Subscribe(buffer int) (<-chan Event, func()) {
	_, ch, cancel := s.SubscribeWithSnapshot(buffer)
	return ch, cancel
}

// SubscribeWithSnapshot is Subscribe plus the session state at the moment of
// subscribing: every message is either in the snapshot or delivered as an event,
// never both.
func (s *Session) SubscribeWithSnapshot(buffer int) (Snapshot, <-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshotLocked()
	if snap.State == StateClosed {
		close(ch)
		return snap, ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			close(sub)
			delete(s.subs, id)
		}
	}
	return snap, ch, cancel
}

// Subscribers reports how many listeners are attached.
func (s *Session) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Session) publishLocked(ev Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
