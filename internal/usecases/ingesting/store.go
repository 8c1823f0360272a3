package ingesting

import (
	"sync"
	"time"

	"github.com/vfg2006/smart-inventory-api/pkg/utils"
)

const (
	sessionIDSize = 16
	sessionTTL    = 2 * time.Hour
)

type session struct {
	state     State
	content   []byte
	updatedAt time.Time
}

// SessionStore keeps upload sessions in memory. Every state change goes through
// Reduce while the store lock is held.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      sessionTTL,
		now:      time.Now,
	}
}

// Create opens a session for a newly selected file.
func (s *SessionStore) Create(fileName string, content []byte) (string, State, error) {
	id, err := utils.GenerateIDWithPrefix("ing", sessionIDSize)
	if err != nil {
		return "", State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	sess := &session{
		state:     Reduce(State{Phase: PhaseIdle}, FileSelected{FileName: fileName}),
		content:   content,
		updatedAt: s.now(),
	}
	s.sessions[id] = sess

	return id, sess.state, nil
}

// Replace swaps the file of an existing session.
func (s *SessionStore) Replace(id, fileName string, content []byte) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}

	sess.content = content
	sess.state = Reduce(sess.state, FileSelected{FileName: fileName})
	sess.updatedAt = s.now()

	return sess.state, nil
}

func (s *SessionStore) Get(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}
	return sess.state, nil
}

// Dispatch reduces action into the session state and returns the result.
func (s *SessionStore) Dispatch(id string, action Action) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}

	sess.state = Reduce(sess.state, action)
	sess.updatedAt = s.now()

	return sess.state, nil
}

// BeginUpload moves the session into the uploading phase and hands back the file
// of the current generation.
func (s *SessionStore) BeginUpload(id string) (State, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, nil, ErrSessionNotFound
	}
	if !sess.state.CanUpload() {
		return sess.state, nil, ErrUploadNotAllowed
	}

	sess.state = Reduce(sess.state, UploadStarted{Generation: sess.state.Generation})
	sess.updatedAt = s.now()

	return sess.state, sess.content, nil
}

// Clear drops the file and resets the session to idle. An upload still running
// for the old generation can no longer touch the state.
func (s *SessionStore) Clear(id string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrSessionNotFound
	}

	sess.content = nil
	sess.state = Reduce(sess.state, Cleared{})
	sess.updatedAt = s.now()

	return sess.state, nil
}

func (s *SessionStore) pruneLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.updatedAt.Before(cutoff) && sess.state.Phase != PhaseUploading {
			delete(s.sessions, id)
		}
	}
}
