package bot

import (
	"context"
	"log"
	"strings"

	"github.com/edudesk/schoolbot/internal/school"
)

// HistorySink receives the full transcript after every processed message.
// Persistence is best-effort: a sink failure is logged, never surfaced.
type HistorySink interface {
	SaveTranscript(ctx context.Context, sessionID, parentEmail, studentID string, turns []school.Turn) error
}

// Engine is the conversational core: it tracks per-session context, runs
// the authentication handshake, classifies intents, and renders scoped
// data into replies. The caller only ever sees a string; nothing
// propagates past ProcessMessage.
type Engine struct {
	repo     *school.Repo
	sessions *SessionStore
	history  HistorySink
}

func NewEngine(repo *school.Repo, sessions *SessionStore, history HistorySink) *Engine {
	return &Engine{repo: repo, sessions: sessions, history: history}
}

// ProcessMessage handles one inbound message synchronously and returns
// the assistant reply. parentEmail is the identity established by the
// boundary layer at login.
func (e *Engine) ProcessMessage(ctx context.Context, sessionID, parentEmail, message string) (reply string) {
	sess := e.sessions.GetOrCreate(sessionID, parentEmail)

	// serialize messages per session so history appends keep arrival order
	sess.mu.Lock()
	defer sess.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[bot] process_message panic session=%s: %v", sessionID, r)
			reply = fallbackText
		}
	}()

	sess.appendTurn("user", message)

	if !sess.Authenticated {
		reply = e.handleHandshake(sess, message)
	} else {
		reply = e.respond(ctx, sess, Classify(strings.ToLower(message)), message)
	}

	sess.appendTurn("assistant", reply)

	if err := e.history.SaveTranscript(ctx, sess.SessionID, sess.ParentEmail, sess.StudentID, sess.History); err != nil {
		log.Printf("[bot] persist transcript session=%s err=%v", sessionID, err)
	}

	return reply
}
