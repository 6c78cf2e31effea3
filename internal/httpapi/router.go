package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/bot"
	"github.com/edudesk/schoolbot/internal/common"
	"github.com/edudesk/schoolbot/internal/config"
	"github.com/edudesk/schoolbot/internal/httpapi/handlers"
	"github.com/edudesk/schoolbot/internal/httpapi/middleware"
	"github.com/edudesk/schoolbot/internal/school"
	"github.com/edudesk/schoolbot/internal/store/redisstore"
)

func NewRouter(db *gorm.DB, cfg config.Config, rds *redisstore.Store, repo *school.Repo, engine *bot.Engine) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.Use(middleware.RequestID())

	h := handlers.NewHandler(db, cfg, rds, repo, engine)

	r.GET("/ping", func(c *gin.Context) {
		common.OK(c, gin.H{"status": "healthy"})
	})

	// auth
	r.POST("/api/auth/login",
		middleware.RateLimit(rds, "login", cfg.LoginRateLimit),
		h.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired(cfg.JWTSecret))

	// chat (JWT required)
	api.POST("/chat/sessions", h.CreateChatSession)
	api.POST("/chat/messages",
		middleware.RateLimit(rds, "chat", cfg.MessageRateLimit),
		h.SendChatMessage)

	// direct student reads, same scoped queries as the bot
	api.GET("/students/:student_id", h.GetStudentInfo)
	api.GET("/students/:student_id/attendance", h.GetStudentAttendance)
	api.GET("/students/:student_id/grades", h.GetStudentGrades)
	api.GET("/students/:student_id/schedule", h.GetStudentSchedule)

	return r
}
