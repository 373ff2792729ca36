package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arabellachen/portfolio/internal/schedule"
)

// stubEndpoint answers like the portfolio server's contact route.
func stubEndpoint(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		var form Form
		_ = json.NewDecoder(r.Body).Decode(&form)
		w.Header().Set("Content-Type", "application/json")
		if !form.Complete() {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(Response{Error: MsgMissingFields})
			return
		}
		_ = json.NewEncoder(w).Encode(Response{Success: true, Message: MsgSent})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newFlow(t *testing.T, p Poster) (*Flow, *schedule.Manual) {
	t.Helper()
	clock := schedule.NewManual(time.Unix(0, 0))
	return NewFlow(p, clock), clock
}

func TestSubmitSuccessClearsFormAndResets(t *testing.T) {
	srv := stubEndpoint(t, nil)
	flow, clock := newFlow(t, NewClient(srv.URL))

	form := Form{Name: "A", Email: "a@b.com", Message: "hi"}
	flow.Edit(form)
	if err := flow.Submit(context.Background(), form); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	st := flow.State()
	if st.Status != Submitted {
		t.Fatalf("status = %v, want submitted", st.Status)
	}
	if st.Message != MsgSent {
		t.Fatalf("message = %q, want %q", st.Message, MsgSent)
	}
	if st.Form != (Form{}) {
		t.Fatalf("form = %+v, want cleared", st.Form)
	}

	clock.Advance(ResetAfter - time.Millisecond)
	if got := flow.State().Status; got != Submitted {
		t.Fatalf("status before reset = %v, want submitted", got)
	}
	clock.Advance(time.Millisecond)
	st = flow.State()
	if st.Status != Idle || st.Message != "" {
		t.Fatalf("after reset = %+v, want idle with no message", st)
	}
}

func TestSubmitValidationErrorKeepsForm(t *testing.T) {
	srv := stubEndpoint(t, nil)
	flow, clock := newFlow(t, NewClient(srv.URL))

	form := Form{Name: "", Email: "a@b.com", Message: "hi"}
	err := flow.Submit(context.Background(), form)

	var re *ResponseError
	if !errors.As(err, &re) || re.StatusCode != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 ResponseError", err)
	}
	st := flow.State()
	if st.Status != Failed || st.Message != MsgMissingFields {
		t.Fatalf("state = %+v, want error %q", st, MsgMissingFields)
	}
	if st.Form != form {
		t.Fatalf("form = %+v, want retained %+v", st.Form, form)
	}

	clock.Advance(time.Minute)
	if got := flow.State().Status; got != Failed {
		t.Fatalf("error state reset to %v, want it to persist", got)
	}
}

func TestSubmitUnreachableUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	flow, _ := newFlow(t, NewClient(url))
	if err := flow.Submit(context.Background(), Form{Name: "A", Email: "a@b.com", Message: "hi"}); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}
	st := flow.State()
	if st.Status != Failed || st.Message != MsgFallback {
		t.Fatalf("state = %+v, want error with fallback", st)
	}
}

func TestSubmitNonJSONErrorUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	flow, _ := newFlow(t, NewClient(srv.URL))
	_ = flow.Submit(context.Background(), Form{Name: "A", Email: "a@b.com", Message: "hi"})
	if got := flow.State().Message; got != MsgFallback {
		t.Fatalf("message = %q, want fallback", got)
	}
}

func TestResubmitAfterErrorRetries(t *testing.T) {
	var calls atomic.Int32
	srv := stubEndpoint(t, &calls)
	flow, _ := newFlow(t, NewClient(srv.URL))

	_ = flow.Submit(context.Background(), Form{Email: "a@b.com", Message: "hi"})
	if flow.State().Status != Failed {
		t.Fatalf("status = %v, want error", flow.State().Status)
	}
	if err := flow.Submit(context.Background(), Form{Name: "A", Email: "a@b.com", Message: "hi"}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if flow.State().Status != Submitted {
		t.Fatalf("status = %v, want submitted", flow.State().Status)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
}

type blockingPoster struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingPoster) Post(ctx context.Context, form Form) (string, error) {
	close(b.entered)
	<-b.release
	return MsgSent, nil
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	p := &blockingPoster{entered: make(chan struct{}), release: make(chan struct{})}
	flow, _ := newFlow(t, p)
	form := Form{Name: "A", Email: "a@b.com", Message: "hi"}

	done := make(chan error, 1)
	go func() { done <- flow.Submit(context.Background(), form) }()
	<-p.entered

	if got := flow.State().Status; got != Submitting {
		t.Fatalf("status = %v, want submitting", got)
	}
	if err := flow.Submit(context.Background(), form); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second Submit = %v, want ErrInFlight", err)
	}

	close(p.release)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if got := flow.State().Status; got != Submitted {
		t.Fatalf("status = %v, want submitted", got)
	}
}

type okPoster struct{}

func (okPoster) Post(context.Context, Form) (string, error) { return "", nil }

func TestNewSubmitCancelsPendingReset(t *testing.T) {
	flow, clock := newFlow(t, okPoster{})
	form := Form{Name: "A", Email: "a@b.com", Message: "hi"}

	_ = flow.Submit(context.Background(), form)
	if got := flow.State().Message; got != MsgThanks {
		t.Fatalf("message = %q, want default thanks", got)
	}
	clock.Advance(4 * time.Second)
	_ = flow.Submit(context.Background(), form)

	clock.Advance(2 * time.Second)
	if got := flow.State().Status; got != Submitted {
		t.Fatalf("status = %v, want submitted (stale reset must not fire)", got)
	}
	clock.Advance(3 * time.Second)
	if got := flow.State().Status; got != Idle {
		t.Fatalf("status = %v, want idle", got)
	}
}
