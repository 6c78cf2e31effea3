package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/schoolbot/internal/common"
	"github.com/edudesk/schoolbot/internal/httpapi/middleware"
)

func parentEmailFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(middleware.ParentEmailKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

type createSessionReq struct {
	StudentID string `json:"student_id" binding:"required"`
}

func (h *Handler) CreateChatSession(c *gin.Context) {
	email, okk := parentEmailFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "student_id required")
		return
	}

	sid, err := common.NewULID()
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
		return
	}

	if err := h.Repo.CreateTranscript(c.Request.Context(), sid, email, req.StudentID); err != nil {
		log.Printf("[CreateChatSession] transcript create email=%s err=%v", email, err)
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to create session")
		return
	}

	common.OK(c, gin.H{
		"session_id": sid,
		"message":    "Chat session created successfully",
	})
}

type sendMessageReq struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *Handler) SendChatMessage(c *gin.Context) {
	email, okk := parentEmailFromContext(c)
	if !okk {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "session_id and message required")
		return
	}

	reply := h.Engine.ProcessMessage(c.Request.Context(), req.SessionID, email, req.Message)

	common.OK(c, gin.H{
		"response":  reply,
		"timestamp": time.Now(),
	})
}
