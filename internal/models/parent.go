package models

import (
	"strings"
	"time"
)

// Parent is a guardian account that can log in and chat about its
// linked students. StudentIDs is a comma-separated list fixed at
// account creation.
type Parent struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"type:varchar(128)" json:"name"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	StudentIDs   string     `gorm:"type:varchar(512);not null" json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (Parent) TableName() string { return "parents" }

// StudentIDList splits the stored id list.
func (p *Parent) StudentIDList() []string {
	if p.StudentIDs == "" {
		return nil
	}
	parts := strings.Split(p.StudentIDs, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
