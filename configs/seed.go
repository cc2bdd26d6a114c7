package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
)

// SeedOwner creates a demo canteen-owner account on first boot so the owner
// flows are reachable without the signup form.
func SeedOwner(cfg *Config) error {
	db := DB()
	if cfg.SeedOwnerEmail == "" || cfg.SeedOwnerPassword == "" {
		log.Println("skip seeding owner: missing SEED_OWNER_EMAIL/SEED_OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.SeedOwnerEmail).Count(&count)
	if count > 0 {
		log.Println("owner already exists:", cfg.SeedOwnerEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.SeedOwnerPassword), bcrypt.DefaultCost)
	owner := entity.User{
		Name:     "Canteen Owner",
		Email:    cfg.SeedOwnerEmail,
		Password: string(hash),
		Role:     "owner",
	}
	return db.Create(&owner).Error
}
