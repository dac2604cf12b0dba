package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/influmatch/influmatch-backend/internal/models"
)

// DB is the global database instance
var DB *gorm.DB

// InitDB initializes the database connection and performs migrations
func InitDB() (*gorm.DB, error) {
	// Get database connection parameters from environment variables
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Validate required environment variables
	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Create DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true, // Disable FK constraints during migration to avoid order issues
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Create public schema if it doesn't exist
	err = db.Exec("CREATE SCHEMA IF NOT EXISTS public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to create public schema: %w", err)
	}

	// Set search_path to public
	err = db.Exec("SET search_path TO public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to set search_path: %w", err)
	}

	// Enable UUID extension
	err = db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\" SCHEMA public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to enable UUID extension: %w", err)
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.APIKey{},
		&models.Brand{},
		&models.Campaign{},
		&models.Influencer{},
		&models.PlatformAccount{},
		&models.OutreachActivity{},
		&models.CommunicationLog{},
		&models.DealContract{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Migration: unique index on the outreach tuple. The service layer also
	// checks for duplicates to produce a friendly error, but the index is what
	// rules out two concurrent creations both passing the check.
	var outreachUniqueIndexExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM pg_indexes
			WHERE schemaname = 'public'
			AND tablename = 'outreach_activities'
			AND indexname = 'idx_outreach_campaign_influencer_method_brand'
		)
	`).Scan(&outreachUniqueIndexExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if outreach unique index exists: %v", err)
	} else if !outreachUniqueIndexExists {
		logrus.Info("Creating unique index on outreach_activities (campaign_id, influencer_id, method, brand_id)...")
		err = db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_outreach_campaign_influencer_method_brand
			ON outreach_activities(campaign_id, influencer_id, method, brand_id)
		`).Error
		if err != nil {
			logrus.Warnf("Failed to create unique index on outreach tuple: %v", err)
		} else {
			logrus.Info("Successfully created unique index on outreach tuple")
		}
	}

	// Migration: unique index on platform_accounts (influencer_id, platform)
	var platformUniqueIndexExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM pg_indexes
			WHERE schemaname = 'public'
			AND tablename = 'platform_accounts'
			AND indexname = 'idx_platform_accounts_influencer_platform'
		)
	`).Scan(&platformUniqueIndexExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if platform account unique index exists: %v", err)
	} else if !platformUniqueIndexExists {
		logrus.Info("Creating unique index on platform_accounts (influencer_id, platform)...")
		err = db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_platform_accounts_influencer_platform
			ON platform_accounts(influencer_id, platform)
		`).Error
		if err != nil {
			logrus.Warnf("Failed to create unique index on platform_accounts: %v", err)
		}
	}

	// Migration: composite index for the conversation-replay query
	var commLogIndexExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM pg_indexes
			WHERE schemaname = 'public'
			AND tablename = 'communication_logs'
			AND indexname = 'idx_communication_logs_outreach_created'
		)
	`).Scan(&commLogIndexExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if communication log index exists: %v", err)
	} else if !commLogIndexExists {
		err = db.Exec(`
			CREATE INDEX IF NOT EXISTS idx_communication_logs_outreach_created
			ON communication_logs(outreach_id, created_at)
		`).Error
		if err != nil {
			logrus.Warnf("Failed to create communication log index: %v", err)
		}
	}

	// Migration: drop the legacy free-text status values that older writers
	// produced for the negotiation state
	err = db.Exec(`
		UPDATE outreach_activities
		SET status = 'Negotiating'
		WHERE status = 'Response - In Negotiation'
	`).Error
	if err != nil {
		logrus.Warnf("Failed to canonicalize legacy negotiation statuses: %v", err)
	}

	// Set global DB instance
	DB = db

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
