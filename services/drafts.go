package services

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"fieldreport/model"
)

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrEntryNotFound  = errors.New("entry not found")
	ErrSubmitInFlight = errors.New("a submit is already in flight for this draft")
)

type sessionState int

const (
	// stateEditing allows every draft mutation and cancel.
	stateEditing sessionState = iota
	// stateSubmitting blocks mutation, cancel, and a second submit; the
	// running submit finishes either way before the session moves on.
	stateSubmitting
)

type draftSession struct {
	draft *model.DraftReport
	state sessionState
}

// DraftSessions holds every draft under construction, keyed by session ID.
// Single-writer per session by construction; the mutex guards the map and
// the state transitions.
type DraftSessions struct {
	mu       sync.Mutex
	sessions map[string]*draftSession
}

func NewDraftSessions() *DraftSessions {
	return &DraftSessions{sessions: make(map[string]*draftSession)}
}

// Start opens a session, empty or re-hydrated from a saved report. Like
// every read accessor it hands out a snapshot, never the live draft, so
// callers can read it after the lock is gone.
func (s *DraftSessions) Start(from *model.Report) (string, *model.DraftReport) {
	draft := model.NewDraft()
	if from != nil {
		draft = model.DraftFromReport(from)
	}
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = &draftSession{draft: draft}
	s.mu.Unlock()
	return id, draft.Snapshot()
}

// SetDetails updates the draft title and reporter name.
func (s *DraftSessions) SetDetails(id, title, reporterName string) (*model.DraftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.editable(id)
	if err != nil {
		return nil, err
	}
	session.draft.Title = title
	session.draft.ReporterName = reporterName
	return session.draft.Snapshot(), nil
}

func (s *DraftSessions) Attach(id string, image []byte, contentType string, loc *model.Geolocation) (model.DraftEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.editable(id)
	if err != nil {
		return model.DraftEntry{}, err
	}
	return *session.draft.AttachEntry(image, contentType, loc), nil
}

func (s *DraftSessions) UpdateDescription(id, localID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.editable(id)
	if err != nil {
		return err
	}
	if !session.draft.UpdateEntryDescription(localID, text) {
		return ErrEntryNotFound
	}
	return nil
}

// RemoveEntry is a no-op for an unknown entry ID, matching the idempotent
// removal contract.
func (s *DraftSessions) RemoveEntry(id, localID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.editable(id)
	if err != nil {
		return err
	}
	session.draft.RemoveEntry(localID)
	return nil
}

func (s *DraftSessions) Draft(id string) (*model.DraftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return session.draft.Snapshot(), nil
}

// Cancel discards the session. Not allowed while a submit is running; the
// in-flight operation completes first.
func (s *DraftSessions) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return ErrDraftNotFound
	}
	if session.state == stateSubmitting {
		return ErrSubmitInFlight
	}
	delete(s.sessions, id)
	return nil
}

// BeginSubmit marks the session submitting and hands out the live draft:
// the submitting state blocks every mutation until FinishSubmit, so the
// workflow may read it without a copy. A second BeginSubmit before
// FinishSubmit fails.
func (s *DraftSessions) BeginSubmit(id string) (*model.DraftReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if session.state == stateSubmitting {
		return nil, ErrSubmitInFlight
	}
	session.state = stateSubmitting
	return session.draft, nil
}

// FinishSubmit ends the in-flight submit. Success discards the session;
// failure returns it to editing with the draft intact for retry.
func (s *DraftSessions) FinishSubmit(id string, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return
	}
	if success {
		delete(s.sessions, id)
		return
	}
	session.state = stateEditing
}

func (s *DraftSessions) editable(id string) (*draftSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if session.state == stateSubmitting {
		return nil, ErrSubmitInFlight
	}
	return session, nil
}
