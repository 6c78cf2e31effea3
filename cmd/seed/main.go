package main

import (
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/auth"
	"github.com/edudesk/schoolbot/internal/config"
	"github.com/edudesk/schoolbot/internal/db"
	"github.com/edudesk/schoolbot/internal/models"
	"github.com/edudesk/schoolbot/internal/school"
)

func main() {
	cfg := config.Load()
	gdb := db.Connect(cfg.DBDSN)

	log.Println("seeding database with sample data...")

	seedTeachers(gdb)
	seedStudents(gdb)
	seedParents(gdb)
	seedSchedule(gdb)
	seedAttendance(gdb)
	seedGrades(gdb)

	log.Println("done")
}

func seedTeachers(gdb *gorm.DB) {
	teachers := []school.Teacher{
		{TeacherID: "T001", Name: "Mrs. Sarah Johnson", Subject: "Mathematics", Email: "sarah.johnson@school.edu", Phone: "555-0101"},
		{TeacherID: "T002", Name: "Mr. David Wilson", Subject: "Science", Email: "david.wilson@school.edu", Phone: "555-0102"},
		{TeacherID: "T003", Name: "Ms. Emily Davis", Subject: "English", Email: "emily.davis@school.edu", Phone: "555-0103"},
		{TeacherID: "T004", Name: "Mr. Michael Brown", Subject: "History", Email: "michael.brown@school.edu", Phone: "555-0104"},
		{TeacherID: "T005", Name: "Mrs. Lisa Garcia", Subject: "Art", Email: "lisa.garcia@school.edu", Phone: "555-0105"},
		{TeacherID: "T006", Name: "Mr. Robert Miller", Subject: "Physical Education", Email: "robert.miller@school.edu", Phone: "555-0106"},
	}
	for i := range teachers {
		if err := gdb.Create(&teachers[i]).Error; err != nil {
			log.Printf("teacher %s: %v", teachers[i].TeacherID, err)
		}
	}
}

func seedStudents(gdb *gorm.DB) {
	students := []school.Student{
		{StudentID: "12345", Name: "Alex Johnson", Class: "10", Section: "A", ParentName: "John Johnson", ParentEmail: "john.johnson@email.com", ParentPhone: "555-1001"},
		{StudentID: "12346", Name: "Emma Wilson", Class: "10", Section: "A", ParentName: "Mary Wilson", ParentEmail: "mary.wilson@email.com", ParentPhone: "555-1002"},
		{StudentID: "12347", Name: "Oliver Davis", Class: "9", Section: "B", ParentName: "James Davis", ParentEmail: "james.davis@email.com", ParentPhone: "555-1003"},
		{StudentID: "12348", Name: "Sophia Brown", Class: "11", Section: "A", ParentName: "Linda Brown", ParentEmail: "linda.brown@email.com", ParentPhone: "555-1004"},
		{StudentID: "12349", Name: "Liam Garcia", Class: "8", Section: "C", ParentName: "Carlos Garcia", ParentEmail: "carlos.garcia@email.com", ParentPhone: "555-1005"},
	}
	for i := range students {
		if err := gdb.Create(&students[i]).Error; err != nil {
			log.Printf("student %s: %v", students[i].StudentID, err)
		}
	}
}

func seedParents(gdb *gorm.DB) {
	accounts := []struct {
		email, name, studentIDs string
	}{
		{"john.johnson@email.com", "John Johnson", "12345"},
		{"mary.wilson@email.com", "Mary Wilson", "12346"},
		{"james.davis@email.com", "James Davis", "12347"},
		{"linda.brown@email.com", "Linda Brown", "12348"},
		{"carlos.garcia@email.com", "Carlos Garcia", "12349"},
	}
	for _, a := range accounts {
		hash, err := auth.HashPassword("password123")
		if err != nil {
			log.Fatalf("hash: %v", err)
		}
		p := models.Parent{Email: a.email, Name: a.name, PasswordHash: hash, StudentIDs: a.studentIDs}
		if err := gdb.Create(&p).Error; err != nil {
			log.Printf("parent %s: %v", a.email, err)
		}
	}
}

func seedSchedule(gdb *gorm.DB) {
	type slot struct {
		subject, teacherID, start, end, room string
	}
	// class 10-A weekly timetable
	week := map[string][]slot{
		"Monday": {
			{"Mathematics", "T001", "08:00", "09:00", "101"},
			{"Science", "T002", "09:00", "10:00", "102"},
			{"English", "T003", "10:30", "11:30", "103"},
			{"History", "T004", "11:30", "12:30", "104"},
			{"Art", "T005", "13:30", "14:30", "105"},
		},
		"Tuesday": {
			{"Science", "T002", "08:00", "09:00", "102"},
			{"Mathematics", "T001", "09:00", "10:00", "101"},
			{"Physical Education", "T006", "10:30", "11:30", "Gym"},
			{"English", "T003", "11:30", "12:30", "103"},
			{"History", "T004", "13:30", "14:30", "104"},
		},
		"Wednesday": {
			{"Mathematics", "T001", "08:00", "09:00", "101"},
			{"English", "T003", "09:00", "10:00", "103"},
			{"Science", "T002", "10:30", "11:30", "102"},
			{"Art", "T005", "11:30", "12:30", "105"},
			{"History", "T004", "13:30", "14:30", "104"},
		},
		"Thursday": {
			{"Science", "T002", "08:00", "09:00", "102"},
			{"Mathematics", "T001", "09:00", "10:00", "101"},
			{"History", "T004", "10:30", "11:30", "104"},
			{"English", "T003", "11:30", "12:30", "103"},
			{"Physical Education", "T006", "13:30", "14:30", "Gym"},
		},
		"Friday": {
			{"English", "T003", "08:00", "09:00", "103"},
			{"Science", "T002", "09:00", "10:00", "102"},
			{"Mathematics", "T001", "10:30", "11:30", "101"},
			{"Art", "T005", "11:30", "12:30", "105"},
			{"History", "T004", "13:30", "14:30", "104"},
		},
	}
	for day, slots := range week {
		for _, s := range slots {
			entry := school.ScheduleEntry{
				Class: "10", Section: "A",
				Subject: s.subject, TeacherID: s.teacherID,
				DayOfWeek: day, StartTime: s.start, EndTime: s.end, Room: s.room,
			}
			if err := gdb.Create(&entry).Error; err != nil {
				log.Printf("schedule %s %s: %v", day, s.subject, err)
			}
		}
	}
}

func seedAttendance(gdb *gorm.DB) {
	now := time.Now()
	for _, studentID := range []string{"12345", "12346", "12347", "12348", "12349"} {
		for d := 0; d < 30; d++ {
			day := now.AddDate(0, 0, -d)
			if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			status := school.StatusPresent
			switch r := rand.Intn(100); {
			case r < 5:
				status = school.StatusAbsent
			case r < 10:
				status = school.StatusLate
			}
			rec := school.AttendanceRecord{
				StudentID: studentID,
				Date:      day.Format("2006-01-02"),
				Status:    status,
			}
			if err := gdb.Create(&rec).Error; err != nil {
				log.Printf("attendance %s %s: %v", studentID, rec.Date, err)
			}
		}
	}
}

func seedGrades(gdb *gorm.DB) {
	subjects := map[string]string{
		"Mathematics": "T001",
		"Science":     "T002",
		"English":     "T003",
		"History":     "T004",
	}
	testTypes := []string{"Unit Test", "Quiz", "Midterm"}
	now := time.Now()
	for _, studentID := range []string{"12345", "12346", "12347", "12348", "12349"} {
		for subject, teacherID := range subjects {
			for i, tt := range testTypes {
				g := school.Grade{
					StudentID: studentID,
					Subject:   subject,
					TestType:  tt,
					Score:     float64(60 + rand.Intn(41)),
					MaxScore:  100,
					Date:      now.AddDate(0, 0, -(i*14 + 3)).Format("2006-01-02"),
					TeacherID: teacherID,
				}
				if err := gdb.Create(&g).Error; err != nil {
					log.Printf("grade %s %s: %v", studentID, subject, err)
				}
			}
		}
	}
}
