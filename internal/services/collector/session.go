package collector

import (
	"strings"

	"github.com/felixgeelhaar/statekit"
)

// State of a Session.
type State int

const (
	StateAwaiting State = iota
	StateAccepted
)

func (s State) String() string {
	switch s {
	case StateAwaiting:
		return "awaiting-input"
	case StateAccepted:
		return "accepted"
	default:
		return "unknown"
	}
}

const (
	stateAwaiting statekit.StateID = "awaiting-input"
	stateAccepted statekit.StateID = "accepted"

	eventInput  statekit.EventType = "INPUT"
	eventReject statekit.EventType = "REJECT"
)

// sessionContext is the machine context of one Session.
type sessionContext struct {
	field   Field
	rejects int
	number  float64
	text    string
	lastErr error
}

// sessionMachine is shared by all sessions; the field travels in the context.
//
// awaiting-input --INPUT [conforms] / accept--> accepted
// awaiting-input --REJECT / reject-----------> awaiting-input
var sessionMachine = mustSessionMachine()

func mustSessionMachine() *statekit.MachineConfig[*sessionContext] {
	m, err := statekit.NewMachine[*sessionContext]("input-session").
		WithInitial(stateAwaiting).
		WithContext(&sessionContext{}).
		WithGuard("conforms", guardConforms).
		WithAction("accept", acceptLine).
		WithAction("reject", rejectLine).
		State(stateAwaiting).
			On(eventInput).Target(stateAccepted).Guard("conforms").Do("accept").
			On(eventReject).Target(stateAwaiting).Do("reject").
			Done().
		State(stateAccepted).
			Final().
			Done().
		Build()
	if err != nil {
		panic("collector: input session machine: " + err.Error())
	}
	return m
}

func payloadLine(ev statekit.Event) string {
	line, _ := ev.Payload.(string)
	return line
}

func guardConforms(c *sessionContext, ev statekit.Event) bool {
	if c == nil {
		return false
	}
	if c.field.Constraint.Text {
		return true
	}
	_, err := c.field.Constraint.Parse(payloadLine(ev))
	return err == nil
}

func acceptLine(c **sessionContext, ev statekit.Event) {
	if c == nil || *c == nil {
		return
	}
	s := *c
	line := payloadLine(ev)
	if s.field.Constraint.Text {
		s.text = line
		return
	}
	s.number, _ = s.field.Constraint.Parse(line)
}

func rejectLine(c **sessionContext, ev statekit.Event) {
	if c == nil || *c == nil {
		return
	}
	s := *c
	line := payloadLine(ev)
	_, err := s.field.Constraint.Parse(line)
	s.rejects++
	s.lastErr = &InvalidInputError{Field: s.field.Key, Input: line, Reason: err}
}

// Session validates the lines offered for one field until one conforms.
type Session struct {
	interp *statekit.Interpreter[*sessionContext]
	ctx    *sessionContext
}

func NewSession(f Field) *Session {
	ctx := &sessionContext{field: f}
	interp := statekit.NewInterpreter(sessionMachine)
	interp.UpdateContext(func(c **sessionContext) {
		*c = ctx
	})
	interp.Start()
	return &Session{interp: interp, ctx: ctx}
}

func (s *Session) Field() Field    { return s.ctx.field }
func (s *Session) Rejects() int    { return s.ctx.rejects }
func (s *Session) Number() float64 { return s.ctx.number }
func (s *Session) Text() string    { return s.ctx.text }

func (s *Session) State() State {
	if s.interp.Matches(stateAccepted) {
		return StateAccepted
	}
	return StateAwaiting
}

// Prompt returns the field prompt before any rejection and the retry message afterwards.
func (s *Session) Prompt() string {
	if s.ctx.rejects > 0 && s.ctx.field.Retry != "" {
		return s.ctx.field.Retry
	}
	return s.ctx.field.Prompt
}

// Feed offers one raw line. A nil error means the session moved to accepted.
func (s *Session) Feed(line string) error {
	if s.interp.Done() {
		return ErrAlreadyAccepted
	}
	line = strings.TrimRight(line, "\r\n")
	s.interp.Send(statekit.Event{Type: eventInput, Payload: line})
	if s.interp.Matches(stateAccepted) {
		return nil
	}
	s.interp.Send(statekit.Event{Type: eventReject, Payload: line})
	return s.ctx.lastErr
}
