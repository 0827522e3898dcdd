package db

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mahadevaelectronics/repair-api/internal/auth"
	"github.com/mahadevaelectronics/repair-api/internal/config"
	"github.com/mahadevaelectronics/repair-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Part{},
		&models.Technician{},
		&models.Booking{},
		&models.Feedback{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if err := SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	return db
}

// SeedAdmin creates the default admin account when none exists for the
// configured email. Existing accounts are left untouched.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var admin models.AdminUser
	err := db.Where("email = ?", cfg.AdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin = models.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("created default admin user")
	return nil
}
