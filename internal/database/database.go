package database

import (
	"fmt"
	"time"

	"device-checkout-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates tables and the indexes the transition engine relies on.
func Migrate(db *gorm.DB) error {
	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(&models.User{}, &models.Device{}, &models.Request{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// At most one pending request per device. The engine checks this under the device
	// row lock; the index is the last line if a writer ever bypasses the engine.
	if err := db.Exec(`
	  CREATE UNIQUE INDEX IF NOT EXISTS device_requests_one_pending_per_device
	  ON device_requests (device_id)
	  WHERE status = 'pending';
	`).Error; err != nil {
		return fmt.Errorf("create pending index: %w", err)
	}

	// History views read a device's ledger newest first.
	if err := db.Exec(`
	  CREATE INDEX IF NOT EXISTS device_requests_device_requested_at_desc
	  ON device_requests (device_id, requested_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create history index: %w", err)
	}

	// assigned_to_id is set if and only if the device is assigned.
	if err := db.Exec(`
	  DO $$
	  BEGIN
	    IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'devices_holder_iff_assigned') THEN
	      ALTER TABLE devices ADD CONSTRAINT devices_holder_iff_assigned
	        CHECK ((status = 'assigned') = (assigned_to_id IS NOT NULL));
	    END IF;
	  END $$;
	`).Error; err != nil {
		return fmt.Errorf("create holder constraint: %w", err)
	}

	return nil
}
