package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"business-suite-backend/internal/config"
	"business-suite-backend/internal/database"
	"business-suite-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures matching the YAML layout in scripts/seed_data.yaml

type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Subdomain   string `yaml:"subdomain"`
	Plan        string `yaml:"plan,omitempty"`
}

type RoleData struct {
	Name             string   `yaml:"name"`
	OrganizationName string   `yaml:"organization_name"`
	Description      string   `yaml:"description,omitempty"`
	Permissions      []string `yaml:"permissions"`
	AllPermissions   bool     `yaml:"all_permissions,omitempty"`
}

type UserData struct {
	Email            string   `yaml:"email"`
	Password         string   `yaml:"password"`
	FirstName        string   `yaml:"first_name"`
	LastName         string   `yaml:"last_name"`
	OrganizationName string   `yaml:"organization_name,omitempty"`
	Roles            []string `yaml:"roles,omitempty"`
	IsSuperAdmin     bool     `yaml:"is_super_admin,omitempty"`
}

type SeedFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Roles         []RoleData         `yaml:"roles"`
	Users         []UserData         `yaml:"users"`
}

func main() {
	log.Println("Seeding initial data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	seed, err := loadSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}

	if err := applySeed(db, seed); err != nil {
		log.Fatalf("Failed to apply seed data: %v", err)
	}

	log.Println("Seed data applied successfully")
}

// connectWithRetry waits for Postgres readiness, useful when the database
// container starts alongside the seeder.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &seed, nil
}

func applySeed(db *gorm.DB, seed *SeedFile) error {
	orgMap := make(map[string]*models.Organization)
	created := 0
	for _, orgData := range seed.Organizations {
		org, isNew, err := upsertOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if isNew {
			created++
		}
	}
	log.Printf("Organizations: %d created, %d total", created, len(seed.Organizations))

	roleMap := make(map[string]*models.Role)
	created = 0
	for _, roleData := range seed.Roles {
		role, isNew, err := upsertRole(db, roleData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
		}
		roleMap[roleData.OrganizationName+"/"+roleData.Name] = role
		if isNew {
			created++
		}
	}
	log.Printf("Roles: %d created, %d total", created, len(seed.Roles))

	created = 0
	for _, userData := range seed.Users {
		isNew, err := upsertUser(db, userData, orgMap, roleMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if isNew {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(seed.Users))

	return nil
}

func upsertOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	plan := data.Plan
	if plan == "" {
		plan = "standard"
	}
	org := &models.Organization{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Subdomain:   data.Subdomain,
		Status:      models.OrganizationStatusActive,
		Plan:        plan,
	}
	if err := db.Create(org).Error; err != nil {
		return nil, false, err
	}
	return org, true, nil
}

func upsertRole(db *gorm.DB, data RoleData, orgMap map[string]*models.Organization) (*models.Role, bool, error) {
	org, ok := orgMap[data.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}

	var existing models.Role
	err := db.First(&existing, "organization_id = ? AND name = ?", org.ID, data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	perms := data.Permissions
	if data.AllPermissions {
		perms = models.AllPermissions()
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return nil, false, err
	}

	role := &models.Role{
		TenantModel: models.TenantModel{OrganizationID: org.ID},
		Name:        data.Name,
		Description: data.Description,
		Permissions: raw,
	}
	if err := db.Create(role).Error; err != nil {
		return nil, false, err
	}
	return role, true, nil
}

func upsertUser(db *gorm.DB, data UserData, orgMap map[string]*models.Organization, roleMap map[string]*models.Role) (bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		IsActive:     true,
		IsSuperAdmin: data.IsSuperAdmin,
	}
	if data.OrganizationName != "" {
		org, ok := orgMap[data.OrganizationName]
		if !ok {
			return false, fmt.Errorf("unknown organization %q", data.OrganizationName)
		}
		user.OrganizationID = &org.ID
	}

	if err := db.Create(user).Error; err != nil {
		return false, err
	}

	for _, roleName := range data.Roles {
		role, ok := roleMap[data.OrganizationName+"/"+roleName]
		if !ok {
			return false, fmt.Errorf("unknown role %q for user %s", roleName, data.Email)
		}
		if err := db.Model(user).Association("Roles").Append(role); err != nil {
			return false, err
		}
	}

	return true, nil
}
