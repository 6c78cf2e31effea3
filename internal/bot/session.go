package bot

import (
	"sync"
	"time"

	"github.com/edudesk/schoolbot/internal/school"
)

// Session is the in-memory conversation state for one session id. The
// engine holds mu for the whole of a ProcessMessage call so concurrent
// messages on the same session cannot interleave history appends.
type Session struct {
	mu sync.Mutex

	SessionID     string
	ParentEmail   string
	Authenticated bool
	StudentID     string
	History       []school.Turn

	lastSeen time.Time
}

func (s *Session) appendTurn(role, content string) {
	s.History = append(s.History, school.Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// SessionStore maps session ids to live conversation state. Sessions
// idle longer than idleTTL are evicted by a janitor goroutine; the
// persisted transcript survives, but a returning caller re-runs the
// authentication handshake.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(idleTTL, sweepEvery time.Duration) *SessionStore {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	if sweepEvery <= 0 {
		sweepEvery = 5 * time.Minute
	}
	st := &SessionStore{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
		stop:     make(chan struct{}),
	}
	go st.janitor(sweepEvery)
	return st
}

func (st *SessionStore) GetOrCreate(sessionID, parentEmail string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[sessionID]; ok {
		s.lastSeen = time.Now()
		return s
	}
	s := &Session{
		SessionID:   sessionID,
		ParentEmail: parentEmail,
		lastSeen:    time.Now(),
	}
	st.sessions[sessionID] = s
	return s
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) Close() {
	st.stopOnce.Do(func() { close(st.stop) })
}

func (st *SessionStore) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.sweep(time.Now())
		}
	}
}

func (st *SessionStore) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.idleTTL {
			delete(st.sessions, id)
		}
	}
}
