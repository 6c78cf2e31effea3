package school

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

type Student struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"-"`
	StudentID   string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"student_id"`
	Name        string     `gorm:"type:varchar(128);not null" json:"name"`
	Class       string     `gorm:"type:varchar(16);not null" json:"class"`
	Section     string     `gorm:"type:varchar(16);not null" json:"section"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	ParentName  string     `gorm:"type:varchar(128)" json:"parent_name"`
	ParentEmail string     `gorm:"type:varchar(255);index;not null" json:"parent_email"`
	ParentPhone string     `gorm:"type:varchar(32)" json:"parent_phone"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Student) TableName() string { return "students" }

type Teacher struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	TeacherID string    `gorm:"type:varchar(32);uniqueIndex;not null" json:"teacher_id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Subject   string    `gorm:"type:varchar(64);not null" json:"subject"`
	Email     string    `gorm:"type:varchar(255);not null" json:"-"`
	Phone     string    `gorm:"type:varchar(32)" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Teacher) TableName() string { return "teachers" }

type AttendanceRecord struct {
	ID        uint64           `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID string           `gorm:"type:varchar(32);index;not null" json:"student_id"`
	Date      string           `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Status    AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
	Reason    string           `gorm:"type:varchar(255)" json:"reason,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (AttendanceRecord) TableName() string { return "attendance" }

type Grade struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID string    `gorm:"type:varchar(32);index;not null" json:"student_id"`
	Subject   string    `gorm:"type:varchar(64);not null" json:"subject"`
	TestType  string    `gorm:"type:varchar(64);not null" json:"test_type"`
	Score     float64   `gorm:"not null" json:"score"`
	MaxScore  float64   `gorm:"not null" json:"max_score"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	TeacherID string    `gorm:"type:varchar(32);not null" json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`

	// populated on reads via the teachers join, never written
	TeacherName string `gorm:"->;-:migration" json:"teacher_name"`
}

func (Grade) TableName() string { return "grades" }

type ScheduleEntry struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Class     string `gorm:"type:varchar(16);index:idx_sched_class_section,priority:1;not null" json:"class"`
	Section   string `gorm:"type:varchar(16);index:idx_sched_class_section,priority:2;not null" json:"section"`
	Subject   string `gorm:"type:varchar(64);not null" json:"subject"`
	TeacherID string `gorm:"type:varchar(32);not null" json:"teacher_id"`
	DayOfWeek string `gorm:"type:varchar(16);not null" json:"day_of_week"`
	StartTime string `gorm:"type:varchar(8);not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"type:varchar(8);not null" json:"end_time"`
	Room      string `gorm:"type:varchar(32)" json:"room,omitempty"`

	// populated on reads via the teachers join, never written
	TeacherName string `gorm:"->;-:migration" json:"teacher_name"`
}

func (ScheduleEntry) TableName() string { return "class_schedule" }

// Turn is one utterance in a chat session transcript.
type Turn struct {
	Role      string    `json:"role"` // user | assistant
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript stores a session's full message history as JSON,
// keyed by the opaque session id.
type Transcript struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID   string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"session_id"`
	ParentEmail string    `gorm:"type:varchar(255);index;not null" json:"parent_email"`
	StudentID   string    `gorm:"type:varchar(32)" json:"student_id"`
	Messages    string    `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Transcript) TableName() string { return "chat_sessions" }
