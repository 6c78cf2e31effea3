package handlers

import (
	"gorm.io/gorm"

	"github.com/edudesk/schoolbot/internal/bot"
	"github.com/edudesk/schoolbot/internal/config"
	"github.com/edudesk/schoolbot/internal/school"
	"github.com/edudesk/schoolbot/internal/store/redisstore"
)

type Handler struct {
	DB     *gorm.DB
	Cfg    config.Config
	Redis  *redisstore.Store
	Repo   *school.Repo
	Engine *bot.Engine
}

func NewHandler(db *gorm.DB, cfg config.Config, rds *redisstore.Store, repo *school.Repo, engine *bot.Engine) *Handler {
	return &Handler{
		DB:     db,
		Cfg:    cfg,
		Redis:  rds,
		Repo:   repo,
		Engine: engine,
	}
}
