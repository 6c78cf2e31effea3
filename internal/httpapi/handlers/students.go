package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/common"
	"github.com/edudesk/schoolbot/internal/school"
)

// resolveStudent proves the parent/student pairing for the REST reads.
// Unauthorized pairs look the same as missing students.
func (h *Handler) resolveStudent(c *gin.Context) (*school.Student, bool) {
	email, okk := parentEmailFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return nil, false
	}
	studentID := c.Param("student_id")
	if studentID == "" {
		common.Fail(c, http.StatusBadRequest, 10002, "student_id required")
		return nil, false
	}

	student, err := h.Repo.FindStudentByParent(c.Request.Context(), email, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40401, "student not found or access denied")
			return nil, false
		}
		log.Printf("[resolveStudent] email=%s student=%s err=%v", email, studentID, err)
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return nil, false
	}
	return student, true
}

func (h *Handler) GetStudentInfo(c *gin.Context) {
	student, ok := h.resolveStudent(c)
	if !ok {
		return
	}
	common.OK(c, gin.H{
		"student_id": student.StudentID,
		"name":       student.Name,
		"class":      student.Class,
		"section":    student.Section,
	})
}

func (h *Handler) GetStudentAttendance(c *gin.Context) {
	student, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		now := time.Now()
		endDate = now.Format("2006-01-02")
		startDate = now.AddDate(0, 0, -30).Format("2006-01-02")
	}

	records, err := h.Repo.ListAttendance(c.Request.Context(), student.StudentID, startDate, endDate)
	if err != nil {
		log.Printf("[GetStudentAttendance] student=%s err=%v", student.StudentID, err)
		common.Fail(c, http.StatusInternalServerError, 50004, "failed to load attendance")
		return
	}

	var present, absent, late int
	for _, r := range records {
		switch r.Status {
		case school.StatusPresent:
			present++
		case school.StatusAbsent:
			absent++
		case school.StatusLate:
			late++
		}
	}

	common.OK(c, gin.H{
		"attendance": records,
		"summary": gin.H{
			"total_days": len(records),
			"present":    present,
			"absent":     absent,
			"late":       late,
		},
	})
}

func (h *Handler) GetStudentGrades(c *gin.Context) {
	student, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	grades, err := h.Repo.ListGrades(c.Request.Context(), student.StudentID, c.Query("subject"))
	if err != nil {
		log.Printf("[GetStudentGrades] student=%s err=%v", student.StudentID, err)
		common.Fail(c, http.StatusInternalServerError, 50005, "failed to load grades")
		return
	}

	common.OK(c, gin.H{"grades": grades})
}

func (h *Handler) GetStudentSchedule(c *gin.Context) {
	student, ok := h.resolveStudent(c)
	if !ok {
		return
	}

	entries, err := h.Repo.ListSchedule(c.Request.Context(), student.Class, student.Section)
	if err != nil {
		log.Printf("[GetStudentSchedule] student=%s err=%v", student.StudentID, err)
		common.Fail(c, http.StatusInternalServerError, 50006, "failed to load schedule")
		return
	}

	common.OK(c, gin.H{"schedule": entries})
}
