package weather

import (
	"context"
	"sync"

	"weathernow.app/pkg/errors"
	"weathernow.app/pkg/validation"
)

// ErrLookupInProgress is returned when a submission arrives while another one is loading.
var ErrLookupInProgress = errors.NewConflictError("a lookup is already in progress")

// Looker runs one weather lookup
type Looker interface {
	Lookup(ctx context.Context, request LookupRequest) (*DisplayModel, error)
}

// Session owns a single PipelineState and moves it through
// Idle -> Loading -> Success | Failure for each submission.
type Session struct {
	looker Looker

	mu        sync.Mutex
	state     PipelineState
	lastInput string
}

// NewSession creates a session in the Idle state
func NewSession(looker Looker) *Session {
	return &Session{
		looker: looker,
		state:  Idle(),
	}
}

// State returns the current state
func (s *Session) State() PipelineState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastInput returns the most recent accepted submission, as typed
func (s *Session) LastInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastInput
}

// CanSubmit mirrors the submit control: enabled when not loading and the input is not blank.
func (s *Session) CanSubmit(input string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return canSubmit(s.state, input)
}

func canSubmit(state PipelineState, input string) bool {
	return !state.IsLoading() && validation.IsNotBlank(input)
}

// Submit runs the lookup pipeline for input and returns the resulting state.
// Blank input leaves the state untouched. A submission while Loading is
// rejected with ErrLookupInProgress. The lookup is not cancelled when ctx is.
func (s *Session) Submit(ctx context.Context, input string) (PipelineState, error) {
	s.mu.Lock()
	if !validation.IsNotBlank(input) {
		state := s.state
		s.mu.Unlock()
		return state, nil
	}
	if s.state.IsLoading() {
		s.mu.Unlock()
		return Loading(), ErrLookupInProgress
	}
	s.state = Loading()
	s.lastInput = input
	s.mu.Unlock()

	// Loading is always cleared, even if the lookup panics.
	next := Failed("Error: lookup aborted")
	defer func() {
		s.mu.Lock()
		s.state = next
		s.mu.Unlock()
	}()

	model, err := s.looker.Lookup(context.WithoutCancel(ctx), LookupRequest{City: input})
	if err != nil {
		next = Failed(FailureMessage(err))
	} else {
		next = Succeeded(model)
	}

	return next, nil
}

// FailureMessage converts a pipeline error to the text stored in a Failure state
func FailureMessage(err error) string {
	return "Error: " + errors.UserMessage(err)
}
