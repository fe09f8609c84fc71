package database

import (
	"log"
	"theatre_manager/config"
	"theatre_manager/constants"
	"theatre_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	password := config.ConfigOr("ADMIN_PASSWORD", "changeme")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Println("failed to hash seed admin password:", err)
		return
	}

	admins := []model.User{
		{FullName: "Administrator", Email: config.ConfigOr("ADMIN_EMAIL", "admin@theatre.local"), Password: string(bytes), Role: constants.ROLE_ADMIN},
	}

	for _, admin := range admins {
		if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
			log.Println("failed to seed admin account:", admin.Email, "error:", err)
		}
	}
}
