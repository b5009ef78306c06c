package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/silkroute/order-tracking-service/internal/config"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.TrackerConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.UserModel{}, &models.OrderModel{}, &models.OrderStepModel{}, &models.NotificationModel{})

	return db
}
