// Package session holds the per-user conversation state and its keyed store.
package session

import (
	"sync"
	"time"
)

// Conversation steps.
const (
	StepIdle               = "idle"
	StepAskRegion          = "ask_region"
	StepConfirmAppointment = "confirm_appointment"
	StepAskName            = "ask_name"
	StepAskPhone           = "ask_phone"
	StepAskDate            = "ask_date"
)

// Session is one user's conversation state. An empty string means the field
// has not been collected yet.
type Session struct {
	Step     string    `json:"step"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Service  string    `json:"service"`
	Date     string    `json:"date"`
	LastSeen time.Time `json:"-"`
}

// Store is the keyed session store the conversation engine works against.
// Implementations must keep distinct keys fully independent.
type Store interface {
	GetOrCreate(userID string) *Session
	Reset(s *Session)
	DeleteIdleBefore(cutoff time.Time) int
}

// MemoryStore keeps all sessions in process memory. The mutex guards the map
// itself, so operations on one key never corrupt another key's entry. Turns
// from the same user are not serialized: two concurrent messages may
// interleave their read-modify-write of one Session. That race is a known
// property of this design, kept as-is.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for userID, creating an idle one on first
// contact.
func (m *MemoryStore) GetOrCreate(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{Step: StepIdle}
		m.sessions[userID] = s
	}
	return s
}

// Reset returns a session to its initial values.
func (m *MemoryStore) Reset(s *Session) {
	s.Step = StepIdle
	s.Name = ""
	s.Phone = ""
	s.Service = ""
	s.Date = ""
}

// DeleteIdleBefore removes every session whose LastSeen is before cutoff and
// returns how many were removed. Sessions that never recorded activity are
// kept.
func (m *MemoryStore) DeleteIdleBefore(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if !s.LastSeen.IsZero() && s.LastSeen.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports how many sessions are currently held.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
