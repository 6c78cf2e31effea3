package bot

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	studentIDRe = regexp.MustCompile(`\b\d{4,}\b`)
)

// handleHandshake runs the in-band authentication step for an
// unauthenticated session. Both an email and a >=4 digit student id must
// appear in the same message. The student id is self-declared and only
// verified against the database at the first data fetch, which fails
// closed with an access-denied reply for an unauthorized pair.
func (e *Engine) handleHandshake(sess *Session, message string) string {
	email := emailRe.FindString(message)
	studentID := studentIDRe.FindString(message)

	if email == "" || studentID == "" {
		return authPromptText
	}

	// The identity established at login is authoritative. A different
	// in-chat email is refused rather than silently rebinding the session,
	// and the stored email is kept verbatim so lookups always use the
	// casing the account was created with.
	if sess.ParentEmail == "" {
		sess.ParentEmail = strings.ToLower(email)
	} else if !strings.EqualFold(email, sess.ParentEmail) {
		return authEmailMismatchText
	}

	sess.StudentID = studentID
	sess.Authenticated = true

	return welcomeText
}
