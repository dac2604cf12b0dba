package excel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Campaign{},
		&models.Influencer{},
		&models.OutreachActivity{},
		&models.DealContract{},
	))
	return db
}

func newService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()
	return NewExcelService(
		repository.NewOutreachRepository(db),
		repository.NewAnalyticsRepository(db),
		t.TempDir(),
	)
}

func seedExportData(t *testing.T, db *gorm.DB) (brandID string) {
	t.Helper()

	user := &models.User{Email: uuid.NewString() + "@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	brand := &models.Brand{UserID: user.ID, Name: "Glow Cosmetics"}
	require.NoError(t, db.Create(brand).Error)

	campaign := &models.Campaign{BrandID: brand.ID, Name: "Diwali Glow Launch", Status: "active-outreach"}
	require.NoError(t, db.Create(campaign).Error)
	influencer := &models.Influencer{Name: "Ananya Kapoor", Handle: "@" + uuid.NewString(), Followers: 250000}
	require.NoError(t, db.Create(influencer).Error)

	now := time.Now()
	require.NoError(t, db.Create(&models.OutreachActivity{
		CampaignID:         campaign.ID,
		InfluencerID:       influencer.ID,
		BrandID:            brand.ID,
		Method:             models.MethodPhone,
		Status:             models.StatusNegotiating,
		InitiatedAt:        now,
		LastStatusUpdateAt: now,
	}).Error)

	return brand.ID
}

func TestExportOutreachToExcelWritesTwoSheetWorkbook(t *testing.T) {
	db := newTestDB(t)
	brandID := seedExportData(t, db)
	service := newService(t, db)

	result, err := service.ExportOutreachToExcel(brandID)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "exported 1 outreach activities across 1 campaigns", result.Message)

	path := service.GetExportFilePath(result.Filename)
	_, err = os.Stat(path)
	require.NoError(t, err, "export file must exist on disk")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Outreach", "Campaign Summary"}, f.GetSheetList())

	status, err := f.GetCellValue("Outreach", "F2")
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusNegotiating), status)

	bucket, err := f.GetCellValue("Outreach", "G2")
	require.NoError(t, err)
	assert.Equal(t, string(models.BucketActive), bucket)

	name, err := f.GetCellValue("Campaign Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Diwali Glow Launch", name)

	negotiations, err := f.GetCellValue("Campaign Summary", "E2")
	require.NoError(t, err)
	assert.Equal(t, "1", negotiations)
}

func TestExportWithNoActivitiesWritesPlaceholder(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: uuid.NewString() + "@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	brand := &models.Brand{UserID: user.ID, Name: "Empty Brand"}
	require.NoError(t, db.Create(brand).Error)
	service := newService(t, db)

	result, err := service.ExportOutreachToExcel(brand.ID)
	require.NoError(t, err)
	require.True(t, result.Success)

	f, err := excelize.OpenFile(service.GetExportFilePath(result.Filename))
	require.NoError(t, err)
	defer f.Close()

	placeholder, err := f.GetCellValue("Outreach", "A2")
	require.NoError(t, err)
	assert.Equal(t, "no outreach activities found", placeholder)
}

func TestGetExportFilePathStripsDirectoryTraversal(t *testing.T) {
	db := newTestDB(t)
	service := newService(t, db)

	path := service.GetExportFilePath("../../etc/passwd")
	assert.Equal(t, "passwd", filepath.Base(path))
	assert.NotContains(t, path, "..")
}
