package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"newvision/internal/models"
	"newvision/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates the default administrator on a fresh installation.
// It runs on every startup but only writes when the user collection is
// empty, so existing installs are never touched.
func SeedAdminUser(repo repository.UserRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Username:  "admin",
		Email:     "admin@newvision.com",
		Password:  string(hashed),
		Role:      "admin",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	log.Println("Seeded default admin user")
	return nil
}
