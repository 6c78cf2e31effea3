package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/school"
)

var subjectRe = regexp.MustCompile(`(?i)\b(math|science|english|history|geography|physics|chemistry|biology|computer|art|music|pe|physical education)\b`)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// respond dispatches a classified intent for an authenticated session.
func (e *Engine) respond(ctx context.Context, sess *Session, intent Intent, message string) string {
	switch intent {
	case IntentGreeting:
		return greetingText
	case IntentAttendance:
		return e.attendanceReply(ctx, sess)
	case IntentGrade:
		return e.gradeReply(ctx, sess, message)
	case IntentSchedule:
		return e.scheduleReply(ctx, sess)
	case IntentTeacher:
		return e.teacherReply(ctx, sess)
	case IntentGeneralInfo:
		return generalInfoReply(message)
	default:
		return helpText
	}
}

// student re-proves the parent/student pairing before any scoped data is
// returned. ok=false with empty reply means access denied; a non-nil err
// is an internal fault the caller converts to a generic apology.
func (e *Engine) student(ctx context.Context, sess *Session) (*school.Student, bool, error) {
	s, err := e.repo.FindStudentByParent(ctx, sess.ParentEmail, sess.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return s, true, nil
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

func (e *Engine) attendanceReply(ctx context.Context, sess *Session) string {
	student, ok, err := e.student(ctx, sess)
	if err != nil {
		log.Printf("[bot] attendance: student lookup session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving attendance information. Please try again or contact the school office."
	}
	if !ok {
		return accessDeniedText
	}

	now := time.Now()
	endDate := now.Format("2006-01-02")
	startDate := now.AddDate(0, 0, -30).Format("2006-01-02")

	records, err := e.repo.ListAttendance(ctx, sess.StudentID, startDate, endDate)
	if err != nil {
		log.Printf("[bot] attendance: list session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving attendance information. Please try again or contact the school office."
	}

	var present, absent, late int
	var recentAbsences []string
	for _, r := range records {
		switch r.Status {
		case school.StatusPresent:
			present++
		case school.StatusAbsent:
			absent++
			if len(recentAbsences) < 5 {
				recentAbsences = append(recentAbsences, r.Date)
			}
		case school.StatusLate:
			late++
		}
	}

	total := len(records)
	pct := 0
	if total > 0 {
		pct = roundPct(float64(present) / float64(total) * 100)
	}

	absenceLine := "**No recent absences** ✨"
	if len(recentAbsences) > 0 {
		absenceLine = "**Recent Absences**: " + strings.Join(recentAbsences, ", ")
	}

	return fmt.Sprintf(`📊 **Attendance Report for %s** - Class %s-%s

**Current Month Statistics:**
- 📈 **Attendance Rate**: %d%%
- ✅ **Days Present**: %d
- ❌ **Days Absent**: %d
- ⏰ **Days Late**: %d
- 📅 **Total School Days**: %d

%s

ℹ️ **Note**: School policy requires minimum 75%% attendance for academic progression.

Need more details about specific dates or have questions about attendance policies?`,
		student.Name, student.Class, student.Section,
		pct, present, absent, late, total, absenceLine)
}

func (e *Engine) gradeReply(ctx context.Context, sess *Session, message string) string {
	student, ok, err := e.student(ctx, sess)
	if err != nil {
		log.Printf("[bot] grades: student lookup session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving grade information. Please try again or contact the school office."
	}
	if !ok {
		return accessDeniedText
	}

	subject := subjectRe.FindString(message)

	grades, err := e.repo.ListGrades(ctx, sess.StudentID, subject)
	if err != nil {
		log.Printf("[bot] grades: list session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving grade information. Please try again or contact the school office."
	}

	if len(grades) == 0 {
		forSubject := ""
		if subject != "" {
			forSubject = " for " + subject
		}
		return fmt.Sprintf(`📚 **Academic Performance - %s**

No grades found%s in our current records.

This might be because:
- No tests have been conducted yet this term
- Grades haven't been updated by teachers
- The subject name might be different

Please contact your class teacher for more information.`, student.Name, forSubject)
	}

	// group by subject preserving the storage order (newest first), so
	// the first record per subject is the latest test
	var subjectOrder []string
	groups := make(map[string][]school.Grade)
	for _, g := range grades {
		if _, seen := groups[g.Subject]; !seen {
			subjectOrder = append(subjectOrder, g.Subject)
		}
		groups[g.Subject] = append(groups[g.Subject], g)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📚 **Academic Performance - %s**\n\n", student.Name)

	for _, name := range subjectOrder {
		sg := groups[name]
		latest := sg[0]

		var sum float64
		for _, g := range sg {
			sum += g.Score / g.MaxScore * 100
		}
		avg := sum / float64(len(sg))

		fmt.Fprintf(&b, "**%s**\n", strings.ToUpper(name))
		fmt.Fprintf(&b, "- 📝 **Latest Test**: %g/%g (%d%%)\n", latest.Score, latest.MaxScore, roundPct(latest.Score/latest.MaxScore*100))
		fmt.Fprintf(&b, "- 📊 **Term Average**: %d%%\n", roundPct(avg))
		fmt.Fprintf(&b, "- 👨‍🏫 **Teacher**: %s\n", latest.TeacherName)
		fmt.Fprintf(&b, "- 📅 **Last Updated**: %s\n\n", latest.Date)
	}

	var overallSum float64
	for _, g := range grades {
		overallSum += g.Score / g.MaxScore * 100
	}
	overall := overallSum / float64(len(grades))
	fmt.Fprintf(&b, "📈 **Overall Performance**: %d%%\n\n", roundPct(overall))

	if overall < 60 {
		b.WriteString("🎯 **Areas for Improvement**: Performance below 60% indicates need for additional support. Consider speaking with teachers about tutoring options.\n\n")
	}

	b.WriteString("Need more details about specific subjects or test dates?")
	return b.String()
}

func (e *Engine) scheduleReply(ctx context.Context, sess *Session) string {
	student, ok, err := e.student(ctx, sess)
	if err != nil {
		log.Printf("[bot] schedule: student lookup session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving schedule information. Please try again or contact the school office."
	}
	if !ok {
		return accessDeniedText
	}

	entries, err := e.repo.ListSchedule(ctx, student.Class, student.Section)
	if err != nil {
		log.Printf("[bot] schedule: list session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving schedule information. Please try again or contact the school office."
	}

	if len(entries) == 0 {
		return fmt.Sprintf(`📅 **Class Schedule - %s-%s**

No schedule information available in our current records.

Please contact the school office for the latest timetable information.`, student.Class, student.Section)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Class Schedule for %s-%s**\n\n", student.Class, student.Section)

	// Monday-Friday only; weekend rows, if any, are dropped
	for _, day := range weekdays {
		var daily []school.ScheduleEntry
		for _, s := range entries {
			if strings.EqualFold(s.DayOfWeek, day) {
				daily = append(daily, s)
			}
		}
		if len(daily) == 0 {
			continue
		}
		sort.Slice(daily, func(i, j int) bool { return daily[i].StartTime < daily[j].StartTime })

		fmt.Fprintf(&b, "**%s**\n", day)
		for _, p := range daily {
			room := ""
			if p.Room != "" {
				room = " | Room " + p.Room
			}
			fmt.Fprintf(&b, "%s - %s | %s | %s%s\n", p.StartTime, p.EndTime, p.Subject, p.TeacherName, room)
		}
		b.WriteString("\n")
	}

	b.WriteString("📞 **Need to contact a teacher?** Ask me for teacher contact information!\n")
	b.WriteString("📚 **Want to know about upcoming tests?** I can help with exam schedules too!")
	return b.String()
}

func (e *Engine) teacherReply(ctx context.Context, sess *Session) string {
	student, ok, err := e.student(ctx, sess)
	if err != nil {
		log.Printf("[bot] teachers: student lookup session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving teacher information. Please try again or contact the school office."
	}
	if !ok {
		return accessDeniedText
	}

	entries, err := e.repo.ListSchedule(ctx, student.Class, student.Section)
	if err != nil {
		log.Printf("[bot] teachers: list session=%s err=%v", sess.SessionID, err)
		return "❌ I encountered an error retrieving teacher information. Please try again or contact the school office."
	}

	if len(entries) == 0 {
		return fmt.Sprintf(`👨‍🏫 **Teacher Information**

No teacher information available in our current records for class %s-%s.

Please contact the school office for teacher contact details.`, student.Class, student.Section)
	}

	// dedup by teacher id, accumulating the set of subjects taught
	type teacherInfo struct {
		name     string
		subjects []string
		seen     map[string]bool
	}
	var order []string
	teachers := make(map[string]*teacherInfo)
	for _, s := range entries {
		ti, ok := teachers[s.TeacherID]
		if !ok {
			ti = &teacherInfo{name: s.TeacherName, seen: make(map[string]bool)}
			teachers[s.TeacherID] = ti
			order = append(order, s.TeacherID)
		}
		if !ti.seen[s.Subject] {
			ti.seen[s.Subject] = true
			ti.subjects = append(ti.subjects, s.Subject)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👨‍🏫 **Teacher Information for Class %s-%s**\n\n", student.Class, student.Section)

	for _, id := range order {
		ti := teachers[id]
		fmt.Fprintf(&b, "**%s**\n", ti.name)
		fmt.Fprintf(&b, "- 📚 **Subjects**: %s\n", strings.Join(ti.subjects, ", "))
		b.WriteString("- 📞 **Contact**: Available through school office\n")
		b.WriteString("- 📧 **Email**: Contact school office for email address\n\n")
	}

	b.WriteString("📞 **School Office Contact**: For direct teacher contact information\n")
	b.WriteString("⏰ **Office Hours**: Monday-Friday, 8:00 AM - 4:00 PM\n\n")
	b.WriteString("💡 **Tip**: For parent-teacher meetings, please contact the school office to schedule appointments.")
	return b.String()
}

// generalInfoReply picks one of four static blocks with a second keyword
// pass; no database access.
func generalInfoReply(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "policy") || strings.Contains(lower, "rule"):
		return policiesText
	case strings.Contains(lower, "fee") || strings.Contains(lower, "payment"):
		return feesText
	case strings.Contains(lower, "event") || strings.Contains(lower, "program"):
		return eventsText
	default:
		return generalInfoText
	}
}
