package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"leadcrm/internal/database"
	"leadcrm/internal/modules/notification"
	"leadcrm/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("APP_DB_DSN")
	if dsn == "" {
		log.Fatal("APP_DB_DSN is required")
	}

	retentionDays := 30
	if v := os.Getenv("APP_NOTIFY_RETENTION_DAYS"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			log.Fatalf("invalid APP_NOTIFY_RETENTION_DAYS: %q", v)
		}
		retentionDays = d
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := repository.NewNotificationRepository(db)
	svc := notification.NewService(repo, repository.NewUserRepository(db), nil)

	deleted, err := svc.PurgeRead(context.Background(), time.Duration(retentionDays)*24*time.Hour)
	if err != nil {
		log.Fatalf("notification cleanup failed: %v", err)
	}

	log.Printf("notification cleanup completed: deleted=%d retention_days=%d", deleted, retentionDays)
}
