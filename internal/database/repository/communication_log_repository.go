package repository

import (
	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type CommunicationLogRepository struct {
	db *gorm.DB
}

func NewCommunicationLogRepository(db *gorm.DB) *CommunicationLogRepository {
	return &CommunicationLogRepository{db: db}
}

// Create appends a log entry
func (r *CommunicationLogRepository) Create(log *models.CommunicationLog) error {
	return r.db.Create(log).Error
}

// GetByOutreachID retrieves all logs for an outreach ordered by timestamp
// ascending (conversation replay order)
func (r *CommunicationLogRepository) GetByOutreachID(outreachID string) ([]*models.CommunicationLog, error) {
	var logs []*models.CommunicationLog
	err := r.db.Where("outreach_id = ?", outreachID).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// GetRecentByBrandID retrieves the newest log entries across a brand's
// outreach activities (recent-activity feed order)
func (r *CommunicationLogRepository) GetRecentByBrandID(brandID string, limit int) ([]*models.CommunicationLog, error) {
	var logs []*models.CommunicationLog
	err := r.db.
		Joins("JOIN outreach_activities ON outreach_activities.id = communication_logs.outreach_id").
		Where("outreach_activities.brand_id = ?", brandID).
		Order("communication_logs.created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
