package database

import (
	"fmt"

	"github.com/blues/cfl/internal/config"
	"github.com/blues/cfl/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate 自动迁移并播种初始数据
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Campaign{},
		&model.Contribution{},
		&model.CampaignTotal{},
		&model.UserTotal{},
		&model.Supporter{},
		&model.SupporterCount{},
		&model.AdminSlot{},
		&model.ApprovedCreator{},
		&model.PlatformState{},
		&model.NFTReward{},
		&model.RewardClaim{},
		&model.TierMetadata{},
		&model.Counter{},
		&model.Event{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return seedTierMetadata(db)
}

// seedTierMetadata 播种五个等级的默认元数据，已存在的不覆盖
func seedTierMetadata(db *gorm.DB) error {
	for tier := model.MinRewardTier; tier <= model.MaxRewardTier; tier++ {
		record := model.TierMetadata{Tier: tier, URI: model.DefaultTierMetadata[tier]}
		if err := db.Where(model.TierMetadata{Tier: tier}).
			Attrs(model.TierMetadata{URI: record.URI}).
			FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to seed tier metadata: %w", err)
		}
	}
	return nil
}
