package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/edudesk/schoolbot/internal/bot"
	"github.com/edudesk/schoolbot/internal/config"
	"github.com/edudesk/schoolbot/internal/db"
	"github.com/edudesk/schoolbot/internal/httpapi"
	"github.com/edudesk/schoolbot/internal/school"
	"github.com/edudesk/schoolbot/internal/store/rabbitmq"
	"github.com/edudesk/schoolbot/internal/store/redisstore"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DBDSN)
	repo := school.NewRepo(gdb)

	rds := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rds.Ping(pingCtx); err != nil {
		log.Printf("redis unavailable, rate limiting disabled: %v", err)
		rds = nil
	}
	cancel()

	// transcript persistence: via the broker when configured, otherwise
	// straight into the database
	var sink bot.HistorySink = repo
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Fatalf("rabbit publisher: %v", err)
		}
		defer pub.Close()
		sink = pub
	}

	sessions := bot.NewSessionStore(cfg.SessionIdleTTL, cfg.SessionSweepEvery)
	defer sessions.Close()

	engine := bot.NewEngine(repo, sessions, sink)

	r := httpapi.NewRouter(gdb, cfg, rds, repo, engine)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("api listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
