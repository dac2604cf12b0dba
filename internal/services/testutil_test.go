package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

// testBrief satisfies the minimum brief length required at campaign creation.
const testBrief = "Launch campaign for our new festive skincare line targeting beauty and lifestyle creators across Instagram and YouTube, with reels and stories showcasing the product range before Diwali."

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.APIKey{},
		&models.Brand{},
		&models.Campaign{},
		&models.Influencer{},
		&models.PlatformAccount{},
		&models.OutreachActivity{},
		&models.CommunicationLog{},
		&models.DealContract{},
		&models.Payment{},
		&models.Notification{},
	))
	return db
}

func seedBrand(t *testing.T, db *gorm.DB) *models.Brand {
	t.Helper()

	user := &models.User{
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	brand := &models.Brand{
		UserID: user.ID,
		Name:   "Glow Cosmetics",
	}
	require.NoError(t, db.Create(brand).Error)
	return brand
}

func seedCampaign(t *testing.T, db *gorm.DB, brandID string) *models.Campaign {
	t.Helper()

	campaign := &models.Campaign{
		BrandID:        brandID,
		Name:           "Diwali Glow Launch",
		Niche:          "Beauty",
		Platforms:      models.StringArray{"Instagram"},
		Brief:          testBrief,
		BudgetAmount:   50000,
		BudgetCurrency: "INR",
		Status:         "Planning Phase",
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}

func seedInfluencer(t *testing.T, db *gorm.DB, name string, followers int64) *models.Influencer {
	t.Helper()

	influencer := &models.Influencer{
		Name:         name,
		Handle:       "@" + uuid.NewString(),
		Followers:    followers,
		Availability: "available",
	}
	require.NoError(t, db.Create(influencer).Error)
	return influencer
}

func seedOutreach(t *testing.T, db *gorm.DB, brandID, campaignID, influencerID string, method models.OutreachMethod, status models.OutreachStatus) *models.OutreachActivity {
	t.Helper()

	now := time.Now()
	outreach := &models.OutreachActivity{
		CampaignID:         campaignID,
		InfluencerID:       influencerID,
		BrandID:            brandID,
		Method:             method,
		Status:             status,
		InitiatedAt:        now,
		LastStatusUpdateAt: now,
	}
	require.NoError(t, db.Create(outreach).Error)
	return outreach
}

func newOutreachService(db *gorm.DB) *OutreachService {
	outreachRepo := repository.NewOutreachRepository(db)
	commLogRepo := repository.NewCommunicationLogRepository(db)
	callSim := NewCallSimulationService(outreachRepo, commLogRepo, nil)
	return NewOutreachService(
		outreachRepo,
		repository.NewCampaignRepository(db),
		repository.NewInfluencerRepository(db),
		commLogRepo,
		callSim,
		nil,
	)
}
