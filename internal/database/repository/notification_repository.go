package repository

import (
	"time"

	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification row
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByBrandID retrieves all notifications for a brand, newest first
func (r *NotificationRepository) GetByBrandID(brandID string) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// CountUnreadByBrandID counts unread notifications for a brand
func (r *NotificationRepository) CountUnreadByBrandID(brandID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("brand_id = ? AND read = ?", brandID, false).
		Count(&count).Error
	return count, err
}

// MarkAsRead marks one notification read, scoped to its brand. Marking an
// already-read notification again is a no-op.
func (r *NotificationRepository) MarkAsRead(brandID, notificationID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("brand_id = ? AND id = ? AND read = ?", brandID, notificationID, false).
		Updates(map[string]interface{}{"read": true, "read_at": now}).Error
}

// MarkAllAsRead marks every unread notification of a brand read
func (r *NotificationRepository) MarkAllAsRead(brandID string) error {
	now := time.Now()
	return r.db.Model(&models.Notification{}).
		Where("brand_id = ? AND read = ?", brandID, false).
		Updates(map[string]interface{}{"read": true, "read_at": now}).Error
}
