package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evandev76/event-organizer-app/internal/config"
	"github.com/evandev76/event-organizer-app/internal/database"
	"github.com/evandev76/event-organizer-app/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Password    string `yaml:"password"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type GroupData struct {
	Code    string       `yaml:"code"`
	Name    string       `yaml:"name"`
	Members []MemberData `yaml:"members"`
}

type EventData struct {
	GroupCode       string    `yaml:"group_code"`
	Title           string    `yaml:"title"`
	Description     string    `yaml:"description,omitempty"`
	StartAt         time.Time `yaml:"start_at"`
	EndAt           time.Time `yaml:"end_at"`
	ReminderMinutes int       `yaml:"reminder_minutes,omitempty"`
	CreatedBy       string    `yaml:"created_by,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type GroupsFile struct {
	Groups []GroupData `yaml:"groups"`
}

type EventsFile struct {
	Events []EventData `yaml:"events"`
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

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	groups, err := loadGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	events, err := loadEvents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[strings.ToLower(userData.Email)] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create groups with their memberships
	groupMap := make(map[string]*models.Group)
	groupCreated := 0
	for _, groupData := range groups {
		group, created, err := createGroup(db, groupData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Code, err)
		}
		groupMap[groupData.Code] = group
		if created {
			groupCreated++
		}
	}
	log.Printf("📋 Groups: %d created, %d total", groupCreated, len(groups))

	// Create events
	eventCreated := 0
	for _, eventData := range events {
		_, created, err := createEvent(db, eventData, groupMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create event %s: %v", eventData.Title, err)
			continue
		}
		if created {
			eventCreated++
		}
	}
	log.Printf("📋 Events: %d created, %d total", eventCreated, len(events))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadGroups(dataDir string) ([]GroupData, error) {
	var allGroups []GroupData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "groups") {
			var file GroupsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGroups = append(allGroups, file.Groups...)
		}
		return nil
	})

	return allGroups, err
}

func loadEvents(dataDir string) ([]EventData, error) {
	var allEvents []EventData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "events") {
			var file EventsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allEvents = append(allEvents, file.Events...)
		}
		return nil
	})

	return allEvents, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	email := strings.ToLower(userData.Email)

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Email:        email,
				PasswordHash: string(hash),
				DisplayName:  userData.DisplayName,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createGroup(db *gorm.DB, groupData GroupData, userMap map[string]*models.User) (*models.Group, bool, error) {
	code := strings.ToUpper(groupData.Code)

	var group models.Group
	created := false
	if err := db.Where("code = ?", code).First(&group).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			group = models.Group{
				Code: code,
				Name: groupData.Name,
			}

			if err := db.Create(&group).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create group: %w", err)
			}
			created = true
		} else {
			return nil, false, fmt.Errorf("failed to query group: %w", err)
		}
	}

	// Attach members. Existing memberships keep their role.
	for _, memberData := range groupData.Members {
		user := userMap[strings.ToLower(memberData.Email)]
		if user == nil {
			log.Printf("⚠️  Warning: user %s not found for group %s", memberData.Email, code)
			continue
		}

		role := models.RoleMember
		if memberData.Role != "" {
			role = memberData.Role
		}

		membership := models.GroupMembership{
			GroupID: group.ID,
			UserID:  user.ID,
			Role:    role,
		}
		if err := db.Where("group_id = ? AND user_id = ?", group.ID, user.ID).
			FirstOrCreate(&membership, membership).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create membership for %s: %v", memberData.Email, err)
		}
	}

	return &group, created, nil
}

func createEvent(db *gorm.DB, eventData EventData, groupMap map[string]*models.Group, userMap map[string]*models.User) (*models.Event, bool, error) {
	group := groupMap[strings.ToUpper(eventData.GroupCode)]
	if group == nil {
		return nil, false, fmt.Errorf("group %s not found for event %s", eventData.GroupCode, eventData.Title)
	}

	var creatorID *uuid.UUID
	if eventData.CreatedBy != "" {
		if user := userMap[strings.ToLower(eventData.CreatedBy)]; user != nil {
			creatorID = &user.ID
		} else {
			// Creator not found, leave the event editable by anyone
			log.Printf("⚠️  Warning: user %s not found for event %s", eventData.CreatedBy, eventData.Title)
		}
	}

	var event models.Event
	if err := db.Where("title = ? AND group_id = ?", eventData.Title, group.ID).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			event = models.Event{
				GroupID:         group.ID,
				Title:           eventData.Title,
				Description:     eventData.Description,
				StartAt:         eventData.StartAt,
				EndAt:           eventData.EndAt,
				ReminderMinutes: eventData.ReminderMinutes,
				CreatedByUserID: creatorID,
			}

			if err := db.Create(&event).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create event: %w", err)
			}
			return &event, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query event: %w", err)
		}
	}

	return &event, false, nil // created = false (existing)
}
