package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/auth"
	"github.com/edudesk/schoolbot/internal/common"
	"github.com/edudesk/schoolbot/internal/models"
)

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "email and password required")
		return
	}

	var parent models.Parent
	if err := h.DB.Where("email = ?", req.Email).First(&parent).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			common.Fail(c, http.StatusUnauthorized, 40103, "invalid credentials")
			return
		}
		log.Printf("[Login] db lookup email=%s err=%v", req.Email, err)
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	if !auth.CheckPassword(parent.PasswordHash, req.Password) {
		common.Fail(c, http.StatusUnauthorized, 40103, "invalid credentials")
		return
	}

	now := time.Now()
	if err := h.DB.Model(&parent).Update("last_login", now).Error; err != nil {
		log.Printf("[Login] last_login update email=%s err=%v", req.Email, err)
	}

	token, err := auth.SignJWT(parent.Email, parent.StudentIDList(), h.Cfg.JWTSecret, 2*time.Hour)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to sign token")
		return
	}

	common.OK(c, gin.H{
		"access_token": token,
		"student_ids":  parent.StudentIDList(),
		"message":      "Login successful",
	})
}
