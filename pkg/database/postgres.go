package database

import (
	"log"
	"os"
	"strings"

	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Event{},
		&models.Participant{},
	)
	if err != nil {
		return err
	}

	return seedAdmins(db)
}

// seedAdmins promotes the comma-separated ADMIN_EMAILS accounts, creating
// them if they have never signed in. Idempotent.
func seedAdmins(db *gorm.DB) error {
	emails := os.Getenv("ADMIN_EMAILS")
	if emails == "" {
		return nil
	}

	for _, email := range strings.Split(emails, ",") {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			admin := models.User{
				Email: email,
				Name:  strings.Split(email, "@")[0],
				Role:  models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if user.Role != models.RoleAdmin {
			if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
