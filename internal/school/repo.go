package school

import (
	"context"
	"encoding/json"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// FindStudentByParent resolves a student only when the parent account is
// linked to that student id. An unlinked pair returns
// gorm.ErrRecordNotFound, same as a missing student, so callers cannot
// distinguish "exists but not yours" from "does not exist".
func (r *Repo) FindStudentByParent(ctx context.Context, parentEmail, studentID string) (*Student, error) {
	var linked struct {
		StudentIDs string
	}
	err := r.db.WithContext(ctx).
		Table("parents").
		Select("student_ids").
		Where("email = ?", parentEmail).
		Take(&linked).Error
	if err != nil {
		return nil, err
	}

	authorized := false
	for _, id := range strings.Split(linked.StudentIDs, ",") {
		if strings.TrimSpace(id) == studentID {
			authorized = true
			break
		}
	}
	if !authorized {
		return nil, gorm.ErrRecordNotFound
	}

	var s Student
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListAttendance returns records within [startDate, endDate] inclusive,
// newest first. Dates are YYYY-MM-DD strings.
func (r *Repo) ListAttendance(ctx context.Context, studentID, startDate, endDate string) ([]AttendanceRecord, error) {
	var recs []AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND date BETWEEN ? AND ?", studentID, startDate, endDate).
		Order("date DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// ListGrades returns grades newest first, joined with teacher names.
// Subject is an optional exact-match filter (case-insensitive).
func (r *Repo) ListGrades(ctx context.Context, studentID, subject string) ([]Grade, error) {
	q := r.db.WithContext(ctx).
		Table("grades").
		Select("grades.*, teachers.name AS teacher_name").
		Joins("JOIN teachers ON teachers.teacher_id = grades.teacher_id").
		Where("grades.student_id = ?", studentID)

	if subject != "" {
		q = q.Where("LOWER(grades.subject) = ?", strings.ToLower(subject))
	}

	var grades []Grade
	if err := q.Order("grades.date DESC").Scan(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *Repo) ListSchedule(ctx context.Context, class, section string) ([]ScheduleEntry, error) {
	var entries []ScheduleEntry
	if err := r.db.WithContext(ctx).
		Table("class_schedule").
		Select("class_schedule.*, teachers.name AS teacher_name").
		Joins("JOIN teachers ON teachers.teacher_id = class_schedule.teacher_id").
		Where("class_schedule.class = ? AND class_schedule.section = ?", class, section).
		Order("class_schedule.day_of_week, class_schedule.start_time").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repo) CreateTranscript(ctx context.Context, sessionID, parentEmail, studentID string) error {
	empty, _ := json.Marshal([]Turn{})
	return r.db.WithContext(ctx).Create(&Transcript{
		SessionID:   sessionID,
		ParentEmail: parentEmail,
		StudentID:   studentID,
		Messages:    string(empty),
	}).Error
}

// SaveTranscript upserts the full history for a session.
func (r *Repo) SaveTranscript(ctx context.Context, sessionID, parentEmail, studentID string, turns []Turn) error {
	body, err := json.Marshal(turns)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"parent_email", "student_id", "messages", "updated_at"}),
		}).
		Create(&Transcript{
			SessionID:   sessionID,
			ParentEmail: parentEmail,
			StudentID:   studentID,
			Messages:    string(body),
		}).Error
}

func (r *Repo) GetTranscript(ctx context.Context, sessionID string) ([]Turn, error) {
	var t Transcript
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&t).Error; err != nil {
		return nil, err
	}
	var turns []Turn
	if err := json.Unmarshal([]byte(t.Messages), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}
