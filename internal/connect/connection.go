package connect

import (
	"fmt"

	"github.com/meetapp/server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres through gorm. TranslateError turns driver
// constraint violations into gorm sentinel errors the repositories match on.
func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate keeps the schema in sync on boot. Order matters: referenced tables
// first so the FK constraints resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.File{},
		&models.User{},
		&models.Banner{},
		&models.Meeting{},
		&models.Subscription{},
	)
	if err != nil {
		return err
	}

	// Partial unique index backing the one-active-subscription-per-meeting
	// invariant. AutoMigrate cannot express the WHERE clause, and a full
	// unique index would block resubscribing after a cancellation.
	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_subscription " +
			"ON subscriptions (user_id, meeting_id) WHERE canceled_at IS NULL",
	).Error
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
