package bot

import "strings"

type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreeting
	IntentAttendance
	IntentGrade
	IntentSchedule
	IntentTeacher
	IntentGeneralInfo
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentAttendance:
		return "attendance"
	case IntentGrade:
		return "grade"
	case IntentSchedule:
		return "schedule"
	case IntentTeacher:
		return "teacher"
	case IntentGeneralInfo:
		return "general_info"
	default:
		return "unknown"
	}
}

// intentRules is evaluated top to bottom, first match wins. A message
// matching several categories resolves to the earliest one, so greeting
// words beat everything else. Do not reorder.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "start", "begin"}},
	{IntentAttendance, []string{"attendance", "absent", "present", "late"}},
	{IntentGrade, []string{"grade", "score", "mark", "test", "exam", "performance"}},
	{IntentSchedule, []string{"schedule", "timetable", "class", "time", "when"}},
	{IntentTeacher, []string{"teacher", "instructor", "contact", "email"}},
	{IntentGeneralInfo, []string{"policy", "rule", "fee", "event", "program", "school"}},
}

// Classify maps a lowercased message to an intent by substring
// membership. No stemming, no negation handling.
func Classify(lower string) Intent {
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
