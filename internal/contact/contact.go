// Package contact holds the client side of the contact form: the form
// values, the submission status machine and the HTTP transport that talks to
// the contact endpoint.
package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/arabellachen/portfolio/internal/schedule"
)

// Messages shared by the endpoint and the client.
const (
	MsgMissingFields = "Please fill out all fields"
	MsgSent          = "Message sent successfully!"
	MsgServerError   = "Error sending message. Please try again."
	MsgFallback      = "Something went wrong. Please try again later."
	MsgThanks        = "Thank you for your message! I'll get back to you soon."
)

// ResetAfter is how long a successful submission stays on screen.
const ResetAfter = 5 * time.Second

// ErrInFlight is returned by Submit while an earlier submission is pending.
var ErrInFlight = errors.New("contact: submission already in flight")

// Form is one contact-form submission.
type Form struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Complete reports whether every field is filled in.
func (f Form) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Message != ""
}

// Status is the lifecycle state of the current submission.
type Status int

const (
	Idle Status = iota
	Submitting
	Submitted
	Failed
)

func (s Status) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Poster delivers a form to the contact endpoint and returns the server's
// confirmation message.
type Poster interface {
	Post(ctx context.Context, form Form) (string, error)
}

// State is a snapshot of the flow.
type State struct {
	Status  Status
	Message string
	Form    Form
}

// Flow is the idle → submitting → submitted/error machine.
type Flow struct {
	mu         sync.Mutex
	poster     Poster
	resetAfter time.Duration
	reset      *schedule.Slot
	state      State
}

// NewFlow returns an idle flow posting through p.
func NewFlow(p Poster, clock schedule.Clock) *Flow {
	f := &Flow{poster: p, resetAfter: ResetAfter}
	f.reset = schedule.NewSlot(clock, &f.mu)
	return f
}

// State returns the current snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Edit replaces the form values without submitting.
func (f *Flow) Edit(form Form) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Form = form
}

// Submit posts form and blocks until the endpoint answers. The outcome is
// recorded in the flow state and also returned. Calling Submit while another
// call is pending returns ErrInFlight without touching the state.
func (f *Flow) Submit(ctx context.Context, form Form) error {
	f.mu.Lock()
	if f.state.Status == Submitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	f.reset.Cancel()
	f.state = State{Status: Submitting, Form: form}
	f.mu.Unlock()

	msg, err := f.poster.Post(ctx, form)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = State{Status: Failed, Message: errorText(err), Form: form}
		return err
	}
	if msg == "" {
		msg = MsgThanks
	}
	f.state = State{Status: Submitted, Message: msg}
	f.reset.Schedule(f.resetAfter, func() {
		f.state.Status = Idle
		f.state.Message = ""
	})
	return nil
}

func errorText(err error) string {
	var re *ResponseError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return MsgFallback
}
