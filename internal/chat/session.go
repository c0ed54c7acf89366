package chat

import (
	"sort"
	"strings"
	"sync"
	"time"

	"job-scout/internal/match"
)

type Profile struct {
	Skills     []string
	Locations  []string
	Experience string
	Salary     string
	JobType    string
}

// Merge folds newly extracted requirements into the accumulated profile,
// deduplicating list fields and letting newer scalar signals win.
func (p *Profile) Merge(req match.Requirements) {
	p.Skills = mergeUnique(p.Skills, req.Skills)
	p.Locations = mergeUnique(p.Locations, req.Locations)
	if req.Experience != "" {
		p.Experience = req.Experience
	}
	if req.Salary != "" {
		p.Salary = req.Salary
	}
	if req.JobType != "" {
		p.JobType = req.JobType
	}
}

// Query flattens the profile into the free-text form the ranking entry
// point expects; recommendations are not a separate algorithm.
func (p Profile) Query() string {
	parts := make([]string, 0, len(p.Skills)+len(p.Locations)+2)
	parts = append(parts, p.Skills...)
	if p.Experience != "" {
		parts = append(parts, p.Experience+" experience")
	}
	parts = append(parts, p.Locations...)
	if p.JobType != "" {
		parts = append(parts, p.JobType)
	}
	return strings.Join(parts, " ")
}

func mergeUnique(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, lists := range [][]string{existing, incoming} {
		for _, v := range lists {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

type HistoryEntry struct {
	UserMessage string
	BotMessage  string
	Intent      Intent
	Timestamp   time.Time
}

type Session struct {
	ID      string
	Profile Profile
	History []HistoryEntry

	mu sync.Mutex
}

// MergeProfile folds extracted requirements into the session profile
// under the session lock.
func (s *Session) MergeProfile(req match.Requirements) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Profile.Merge(req)
}

// CurrentProfile returns a copy safe to read outside the lock.
func (s *Session) CurrentProfile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.Profile
	p.Skills = append([]string(nil), s.Profile.Skills...)
	p.Locations = append([]string(nil), s.Profile.Locations...)
	return p
}

func (s *Session) Append(entry HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.History = append(s.History, entry)
}

func (s *Session) Snapshot() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.History))
	copy(out, s.History)
	return out
}

// Manager keeps chat sessions keyed by id. Sessions are created lazily
// on first use and live until reset.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) GetOrCreate(id string) *Session {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "default"
	}

	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = &Session{ID: id}
	m.sessions[id] = s
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[strings.TrimSpace(id)]
	return s, ok
}

// Reset drops the session entirely; the next message starts fresh.
func (m *Manager) Reset(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, strings.TrimSpace(id))
}

func (m *Manager) SessionIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
