package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"device-checkout-backend/internal/auth"
	"device-checkout-backend/internal/config"
	"device-checkout-backend/internal/database"
	"device-checkout-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type DeviceData struct {
	Name         string `yaml:"name"`
	SerialNumber string `yaml:"serial_number"`
	Category     string `yaml:"category"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type DevicesFile struct {
	Devices []DeviceData `yaml:"devices"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	// Development tokens; production tokens come from the identity provider
	if cfg.Environment != "production" {
		printDevTokens(auth.NewTokenService(cfg.JWTSecret), users)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs including SQL queries and "record not found"
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]models.User, error) {
	var usersFiles []UsersFile
	if err := walkYAML(dataDir, "users", &usersFiles); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var devicesFiles []DevicesFile
	if err := walkYAML(dataDir, "devices", &devicesFiles); err != nil {
		return nil, fmt.Errorf("failed to load devices: %w", err)
	}

	var users []models.User
	var usersCreated int
	for _, file := range usersFiles {
		for _, data := range file.Users {
			user, created, err := createUser(db, data)
			if err != nil {
				return nil, err
			}
			if created {
				usersCreated++
			}
			users = append(users, *user)
		}
	}

	var devicesCreated, devicesTotal int
	for _, file := range devicesFiles {
		for _, data := range file.Devices {
			created, err := createDevice(db, data)
			if err != nil {
				return nil, err
			}
			devicesTotal++
			if created {
				devicesCreated++
			}
		}
	}

	log.Printf("Users: %d created, %d existing", usersCreated, len(users)-usersCreated)
	log.Printf("Devices: %d created, %d existing", devicesCreated, devicesTotal-devicesCreated)
	return users, nil
}

// walkYAML decodes every .yaml file under dataDir whose path contains kind
func walkYAML[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, false, nil // existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user %s: %w", email, err)
	}

	role := models.UserRole(data.Role)
	if data.Role == "" {
		role = models.UserRoleUser
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("user %s: invalid role %q", email, data.Role)
	}

	user = models.User{Name: data.Name, Email: email, Role: role}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", email, err)
	}
	return &user, true, nil
}

func createDevice(db *gorm.DB, data DeviceData) (bool, error) {
	var device models.Device
	err := db.Where("serial_number = ?", data.SerialNumber).First(&device).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query device %s: %w", data.SerialNumber, err)
	}

	device = models.Device{
		Name:         data.Name,
		SerialNumber: data.SerialNumber,
		Category:     data.Category,
	}
	device.SetState(models.StateAvailable{})
	if err := db.Create(&device).Error; err != nil {
		return false, fmt.Errorf("failed to create device %s: %w", data.SerialNumber, err)
	}
	return true, nil
}

func printDevTokens(tokens *auth.TokenService, users []models.User) {
	log.Println("Development bearer tokens:")
	for _, user := range users {
		token, err := tokens.GenerateJWT(auth.Identity{UserID: user.ID, Role: user.Role})
		if err != nil {
			log.Printf("  %s: failed to sign token: %v", user.Email, err)
			continue
		}
		log.Printf("  %-28s %-8s %s", user.Email, user.Role, token)
	}
}
