package httpsrv

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tutils/lcg"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is a generator owned by one API client
type Session struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`

	gen        *lcg.Locked
	fullPeriod bool
}

// SessionInfo is the JSON view of a session
type SessionInfo struct {
	ID         string    `json:"id"`
	A          int64     `json:"a"`
	C          int64     `json:"c"`
	M          int64     `json:"m"`
	State      int64     `json:"state"`
	FullPeriod bool      `json:"fullPeriod"`
	Created    time.Time `json:"created"`
}

// Info snapshots the session's parameters and state. The period check is
// done once in Create.
func (s *Session) Info() SessionInfo {
	g := s.gen.Snapshot()
	return SessionInfo{
		ID:         s.ID,
		A:          g.A(),
		C:          g.C(),
		M:          g.M(),
		State:      g.State(),
		FullPeriod: s.fullPeriod,
		Created:    s.Created,
	}
}

// SessionManager manages generator sessions
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Create builds a generator from opts and registers it
func (sm *SessionManager) Create(opts ...lcg.Option) (*Session, error) {
	g, err := lcg.NewWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      uuid.New().String(),
		Created: time.Now(),
		gen:     lcg.NewLocked(g),

		fullPeriod: g.FullPeriod(),
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s.ID] = s
	return s, nil
}

func (sm *SessionManager) Get(id string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	s, ok := sm.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (sm *SessionManager) Delete(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if _, ok := sm.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(sm.sessions, id)
	return nil
}

// List returns all sessions, oldest first
func (sm *SessionManager) List() []*Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	list := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		list = append(list, s)
	}
	sortSessions(list)
	return list
}

func sortSessions(list []*Session) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Created.Before(list[j].Created)
	})
}
