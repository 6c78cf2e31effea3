package bot

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/models"
	"github.com/edudesk/schoolbot/internal/school"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Parent{},
		&school.Student{}, &school.Teacher{}, &school.AttendanceRecord{},
		&school.Grade{}, &school.ScheduleEntry{}, &school.Transcript{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestEngine(t *testing.T) (*Engine, *school.Repo, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	repo := school.NewRepo(db)
	sessions := NewSessionStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Close)
	return NewEngine(repo, sessions, repo), repo, db
}

func seedFamily(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := db.Create(&models.Parent{
		Email: "parent@email.com", PasswordHash: "x", StudentIDs: "12345",
	}).Error; err != nil {
		t.Fatalf("seed parent: %v", err)
	}
	if err := db.Create(&school.Student{
		StudentID: "12345", Name: "Alex Johnson", Class: "10", Section: "A",
		ParentEmail: "parent@email.com",
	}).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
}

// authenticate drives the handshake so scoped-data tests start from an
// authenticated session.
func authenticate(t *testing.T, e *Engine, sessionID string) {
	t.Helper()
	reply := e.ProcessMessage(context.Background(), sessionID, "parent@email.com",
		"My email is parent@email.com and my child's ID is 12345")
	if !strings.Contains(reply, "Welcome to SchoolBot") {
		t.Fatalf("handshake did not succeed: %q", reply)
	}
}

func TestHandshakeIncompleteInput(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	// missing both, then each half on its own
	for _, msg := range []string{
		"hello, I want attendance info",
		"my email is parent@email.com",
		"my child's ID is 12345",
		"id 123", // too short to be a student id
	} {
		reply := e.ProcessMessage(ctx, "s1", "parent@email.com", msg)
		if reply != authPromptText {
			t.Fatalf("message %q: expected auth prompt, got %q", msg, reply)
		}
	}

	sess := e.sessions.GetOrCreate("s1", "parent@email.com")
	if sess.Authenticated {
		t.Fatalf("session must remain unauthenticated")
	}
}

func TestHandshakeSuccess(t *testing.T) {
	e, _, _ := newTestEngine(t)

	authenticate(t, e, "s1")

	sess := e.sessions.GetOrCreate("s1", "parent@email.com")
	if !sess.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if sess.StudentID != "12345" {
		t.Fatalf("expected bound student id 12345, got %q", sess.StudentID)
	}
	if sess.ParentEmail != "parent@email.com" {
		t.Fatalf("unexpected parent email %q", sess.ParentEmail)
	}
}

func TestHandshakeEmailMismatchRefused(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	reply := e.ProcessMessage(ctx, "s1", "parent@email.com",
		"My email is somebody.else@email.com and my child's ID is 12345")
	if reply != authEmailMismatchText {
		t.Fatalf("expected mismatch refusal, got %q", reply)
	}
	if e.sessions.GetOrCreate("s1", "parent@email.com").Authenticated {
		t.Fatalf("mismatched email must not authenticate")
	}
}

// The email bound at session creation survives the handshake verbatim,
// even when the parent types it in a different case. A rewritten email
// could stop matching the stored account on a case-sensitive collation.
func TestHandshakeKeepsBoundEmailCasing(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)
	ctx := context.Background()

	reply := e.ProcessMessage(ctx, "s1", "parent@email.com",
		"My email is PARENT@EMAIL.COM and my child's ID is 12345")
	if !strings.Contains(reply, "Welcome to SchoolBot") {
		t.Fatalf("expected welcome, got %q", reply)
	}
	if got := e.sessions.GetOrCreate("s1", "parent@email.com").ParentEmail; got != "parent@email.com" {
		t.Fatalf("bound email rewritten to %q", got)
	}

	// The stored casing still resolves the linked student.
	reply = e.ProcessMessage(ctx, "s1", "parent@email.com", "show me attendance")
	if reply == accessDeniedText {
		t.Fatalf("authorized parent denied after case-insensitive handshake")
	}
	if !strings.Contains(reply, "**Attendance Rate**") {
		t.Fatalf("expected attendance report, got %q", reply)
	}
}

func TestAttendanceReport(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	now := time.Now()
	statuses := []school.AttendanceStatus{
		school.StatusPresent, school.StatusPresent, school.StatusAbsent, school.StatusLate,
	}
	for i, st := range statuses {
		rec := school.AttendanceRecord{
			StudentID: "12345",
			Date:      now.AddDate(0, 0, -(i + 1)).Format("2006-01-02"),
			Status:    st,
		}
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed attendance: %v", err)
		}
	}

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me attendance")

	for _, want := range []string{
		"Attendance Report for Alex Johnson",
		"Class 10-A",
		"**Attendance Rate**: 50%",
		"**Days Present**: 2",
		"**Days Absent**: 1",
		"**Days Late**: 1",
		"**Total School Days**: 4",
		"75% attendance",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply missing %q:\n%s", want, reply)
		}
	}
	if !strings.Contains(reply, "**Recent Absences**: "+now.AddDate(0, 0, -3).Format("2006-01-02")) {
		t.Errorf("reply missing absence date:\n%s", reply)
	}
}

func TestAttendanceNoRecords(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me attendance")

	if !strings.Contains(reply, "**Attendance Rate**: 0%") {
		t.Fatalf("zero-day window must report 0%%:\n%s", reply)
	}
	if !strings.Contains(reply, "**No recent absences**") {
		t.Fatalf("expected no-absences line:\n%s", reply)
	}
}

func TestAttendanceAccessDenied(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	// self-declared id the parent is not linked to: handshake accepts it,
	// the first data fetch fails closed
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com",
		"My email is parent@email.com and my child's ID is 99999")
	if !strings.Contains(reply, "Welcome to SchoolBot") {
		t.Fatalf("handshake should accept the self-declared id: %q", reply)
	}

	reply = e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me attendance")
	if reply != accessDeniedText {
		t.Fatalf("expected access denied, got %q", reply)
	}
}

func TestGradeReport(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	if err := db.Create(&school.Teacher{
		TeacherID: "T001", Name: "Mrs. Sarah Johnson", Subject: "Mathematics", Email: "s@school.edu",
	}).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	for _, g := range []school.Grade{
		{StudentID: "12345", Subject: "Mathematics", TestType: "Midterm", Score: 90, MaxScore: 100, Date: "2026-08-20", TeacherID: "T001"},
		{StudentID: "12345", Subject: "Mathematics", TestType: "Quiz", Score: 80, MaxScore: 100, Date: "2026-08-01", TeacherID: "T001"},
	} {
		if err := db.Create(&g).Error; err != nil {
			t.Fatalf("seed grade: %v", err)
		}
	}

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me the grades")

	for _, want := range []string{
		"Academic Performance - Alex Johnson",
		"**MATHEMATICS**",
		"**Latest Test**: 90/100 (90%)",
		"**Term Average**: 85%",
		"**Teacher**: Mrs. Sarah Johnson",
		"**Overall Performance**: 85%",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("reply missing %q:\n%s", want, reply)
		}
	}
	if strings.Contains(reply, "Areas for Improvement") {
		t.Errorf("no improvement block expected at 85%%:\n%s", reply)
	}
}

func TestGradeReportLowOverall(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	if err := db.Create(&school.Teacher{
		TeacherID: "T001", Name: "Mrs. Sarah Johnson", Subject: "Mathematics", Email: "s@school.edu",
	}).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	for _, g := range []school.Grade{
		{StudentID: "12345", Subject: "Mathematics", TestType: "Quiz", Score: 40, MaxScore: 100, Date: "2026-08-20", TeacherID: "T001"},
		{StudentID: "12345", Subject: "Mathematics", TestType: "Quiz", Score: 50, MaxScore: 100, Date: "2026-08-01", TeacherID: "T001"},
	} {
		if err := db.Create(&g).Error; err != nil {
			t.Fatalf("seed grade: %v", err)
		}
	}

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me the grades")

	if !strings.Contains(reply, "**Overall Performance**: 45%") {
		t.Errorf("reply missing overall average:\n%s", reply)
	}
	if !strings.Contains(reply, "Areas for Improvement") {
		t.Errorf("expected improvement block below 60%%:\n%s", reply)
	}
}

func TestGradeReportNoData(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "show me the grades")

	if !strings.Contains(reply, "No grades found") {
		t.Fatalf("expected no-data explanation:\n%s", reply)
	}
}

func seedScheduleRows(t *testing.T, db *gorm.DB, entries []school.ScheduleEntry) {
	t.Helper()
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("seed schedule: %v", err)
		}
	}
}

func TestScheduleReport(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	if err := db.Create(&school.Teacher{
		TeacherID: "T001", Name: "Mrs. Sarah Johnson", Subject: "Mathematics", Email: "s@school.edu",
	}).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	seedScheduleRows(t, db, []school.ScheduleEntry{
		// inserted out of order on purpose
		{Class: "10", Section: "A", Subject: "Science", TeacherID: "T001", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Room: "102"},
		{Class: "10", Section: "A", Subject: "Mathematics", TeacherID: "T001", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", Room: "101"},
		{Class: "10", Section: "A", Subject: "Art", TeacherID: "T001", DayOfWeek: "Saturday", StartTime: "08:00", EndTime: "09:00"},
	})

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "what's the timetable")

	if !strings.Contains(reply, "**Monday**") {
		t.Fatalf("expected Monday block:\n%s", reply)
	}
	if strings.Contains(reply, "Saturday") {
		t.Fatalf("weekend entries must be omitted:\n%s", reply)
	}
	first := strings.Index(reply, "08:00 - 09:00 | Mathematics")
	second := strings.Index(reply, "09:00 - 10:00 | Science")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("entries must be sorted by start time:\n%s", reply)
	}
	if !strings.Contains(reply, "| Room 101") {
		t.Fatalf("expected room suffix:\n%s", reply)
	}
}

func TestTeacherReportDedup(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)

	for _, tc := range []school.Teacher{
		{TeacherID: "T001", Name: "Mrs. Sarah Johnson", Subject: "Mathematics", Email: "s@school.edu"},
		{TeacherID: "T002", Name: "Mr. David Wilson", Subject: "History", Email: "d@school.edu"},
	} {
		if err := db.Create(&tc).Error; err != nil {
			t.Fatalf("seed teacher: %v", err)
		}
	}
	seedScheduleRows(t, db, []school.ScheduleEntry{
		{Class: "10", Section: "A", Subject: "Mathematics", TeacherID: "T001", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00"},
		{Class: "10", Section: "A", Subject: "Science", TeacherID: "T001", DayOfWeek: "Tuesday", StartTime: "08:00", EndTime: "09:00"},
		{Class: "10", Section: "A", Subject: "History", TeacherID: "T002", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00"},
	})

	authenticate(t, e, "s1")
	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "who is the teacher")

	if n := strings.Count(reply, "Mrs. Sarah Johnson"); n != 1 {
		t.Fatalf("expected one block for T001, found %d:\n%s", n, reply)
	}
	if !strings.Contains(reply, "**Subjects**: Mathematics, Science") {
		t.Fatalf("expected unioned subjects:\n%s", reply)
	}
	if !strings.Contains(reply, "Mr. David Wilson") {
		t.Fatalf("expected second teacher block:\n%s", reply)
	}
	if !strings.Contains(reply, "Available through school office") {
		t.Fatalf("expected office contact line:\n%s", reply)
	}
}

func TestGreetingAndUnknown(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)
	ctx := context.Background()

	authenticate(t, e, "s1")

	if reply := e.ProcessMessage(ctx, "s1", "parent@email.com", "hi there"); reply != greetingText {
		t.Fatalf("expected greeting, got %q", reply)
	}

	// greeting keyword outranks the attendance keyword
	if reply := e.ProcessMessage(ctx, "s1", "parent@email.com", "hi, show my attendance"); reply != greetingText {
		t.Fatalf("expected greeting to win, got %q", reply)
	}

	if reply := e.ProcessMessage(ctx, "s1", "parent@email.com", "qwerty asdf"); reply != helpText {
		t.Fatalf("expected help response, got %q", reply)
	}
}

func TestGeneralInfoTopics(t *testing.T) {
	e, _, db := newTestEngine(t)
	seedFamily(t, db)
	ctx := context.Background()

	authenticate(t, e, "s1")

	cases := []struct {
		msg      string
		fragment string
	}{
		{"what is the school policy", "School Policies & Rules"},
		{"school fee details please", "Fee Information"},
		{"any school events", "School Events & Programs"},
		{"tell me about the school", "General School Information"},
	}
	for _, c := range cases {
		reply := e.ProcessMessage(ctx, "s1", "parent@email.com", c.msg)
		if !strings.Contains(reply, c.fragment) {
			t.Errorf("message %q: missing %q:\n%s", c.msg, c.fragment, reply)
		}
	}
}

func TestHistoryPersistedAndOrdered(t *testing.T) {
	e, repo, db := newTestEngine(t)
	seedFamily(t, db)
	ctx := context.Background()

	authenticate(t, e, "s1")
	e.ProcessMessage(ctx, "s1", "parent@email.com", "hi")
	e.ProcessMessage(ctx, "s1", "parent@email.com", "show me attendance")

	turns, err := repo.GetTranscript(ctx, "s1")
	if err != nil {
		t.Fatalf("load transcript: %v", err)
	}
	// handshake + 2 messages = 3 user/assistant pairs
	if len(turns) != 6 {
		t.Fatalf("expected 6 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		want := "user"
		if i%2 == 1 {
			want = "assistant"
		}
		if turn.Role != want {
			t.Fatalf("turn %d: expected role %s, got %s", i, want, turn.Role)
		}
	}
	if turns[2].Content != "hi" || turns[4].Content != "show me attendance" {
		t.Fatalf("unexpected turn order: %q / %q", turns[2].Content, turns[4].Content)
	}
}

// a sink failure must be swallowed: the caller still gets the reply
type failingSink struct{}

func (failingSink) SaveTranscript(ctx context.Context, sessionID, parentEmail, studentID string, turns []school.Turn) error {
	return fmt.Errorf("sink down")
}

func TestPersistFailureDoesNotSurface(t *testing.T) {
	db := openTestDB(t)
	repo := school.NewRepo(db)
	sessions := NewSessionStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Close)
	e := NewEngine(repo, sessions, failingSink{})

	reply := e.ProcessMessage(context.Background(), "s1", "parent@email.com", "hello")
	if reply != authPromptText {
		t.Fatalf("expected normal reply despite sink failure, got %q", reply)
	}
}
