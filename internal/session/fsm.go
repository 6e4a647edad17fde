package session

import (
	"context"

	"github.com/qmuntal/stateless"

	"github.com/comigor/portfolio-bot/internal/logger"
)

// State is the dispatch state of a session.
type State string

const (
	StateIdle          State = "Idle"
	StateAwaitingReply State = "AwaitingReply"
	StateClosed        State = "Closed" // terminal: session torn down
)

// Trigger moves a session between states.
type Trigger string

const (
	TriggerSubmit         Trigger = "Submit"
	TriggerReplyDelivered Trigger = "ReplyDelivered"
	TriggerTeardown       Trigger = "Teardown"
)

// newDispatchFSM wires the Idle -> AwaitingReply -> Idle loop. onTransition sees every
// state change, including teardown.
func newDispatchFSM(sessionID string, onTransition func(from, to State)) *stateless.StateMachine {
	fsm := stateless.NewStateMachine(StateIdle)

	fsm.Configure(StateIdle).
		Permit(TriggerSubmit, StateAwaitingReply).
		Permit(TriggerTeardown, StateClosed)

	fsm.Configure(StateAwaitingReply).
		Permit(TriggerReplyDelivered, StateIdle).
		Permit(TriggerTeardown, StateClosed)

	fsm.Configure(StateClosed).
		Ignore(TriggerSubmit).
		Ignore(TriggerReplyDelivered).
		Ignore(TriggerTeardown)

	fsm.OnTransitioned(func(_ context.Context, t stateless.Transition) {
		from, _ := t.Source.(State)
		to, _ := t.Destination.(State)
		logger.L.Debug("session transition", "session", sessionID, "from", from, "to", to, "trigger", t.Trigger)
		if onTransition != nil {
			onTransition(from, to)
		}
	})

	return fsm
}
