package gorm

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/pkg/resource"
)

// DSN assembles the postgres connection string from app.db.* properties.
func DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s search_path=%s",
		resource.GetString("app.db.host"),
		resource.GetString("app.db.username"),
		resource.GetString("app.db.password"),
		resource.GetString("app.db.database"),
		resource.GetString("app.db.port"),
		resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
		resource.GetStringOrDefault("app.db.schema", "public"))
}

func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(resource.GetInt("app.db.max-open-conns"))
	sqlDB.SetMaxIdleConns(resource.GetInt("app.db.max-idle-conns"))
	return db, nil
}

// Migrate creates or updates the users and favorite_cities tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}, &entity.FavoriteCity{}); err != nil {
		return fmt.Errorf("fail to migrate schema: %w", err)
	}
	return nil
}
