package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDSN         string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// conversational session store
	SessionIdleTTL    time.Duration
	SessionSweepEvery time.Duration

	// rate limits (requests per minute, 0 disables)
	LoginRateLimit   int
	MessageRateLimit int

	// rabbitMQ (optional; empty RabbitURL keeps transcript persistence in-process)
	RabbitURL   string
	RabbitQueue string
}

func Load() Config {
	// DSN demo：
	// app:apppass@tcp(127.0.0.1:3306)/schoolbot?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			"app", "apppass", "127.0.0.1", "3306", "schoolbot",
		)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	idleTTL := 30 * time.Minute
	if v := os.Getenv("SESSION_IDLE_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			idleTTL = time.Duration(n) * time.Minute
		}
	}

	sweepEvery := 5 * time.Minute
	if v := os.Getenv("SESSION_SWEEP_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			sweepEvery = time.Duration(n) * time.Minute
		}
	}

	loginRate := 5
	if v := os.Getenv("LOGIN_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			loginRate = n
		}
	}

	messageRate := 30
	if v := os.Getenv("MESSAGE_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			messageRate = n
		}
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "transcript_jobs"
	}

	return Config{
		DBDSN:     dsn,
		JWTSecret: secret,

		RedisAddr:     redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SessionIdleTTL:    idleTTL,
		SessionSweepEvery: sweepEvery,

		LoginRateLimit:   loginRate,
		MessageRateLimit: messageRate,

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,
	}
}
