package db

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/models"
	"github.com/edudesk/schoolbot/internal/school"
)

// Connect opens the MySQL database and migrates the schema.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	return gdb
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Parent{},
		&school.Student{},
		&school.Teacher{},
		&school.AttendanceRecord{},
		&school.Grade{},
		&school.ScheduleEntry{},
		&school.Transcript{},
	)
}
