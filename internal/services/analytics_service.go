package services

import (
	"fmt"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

// AnalyticsService derives dashboard aggregates from outreach state. The
// headline counters are computed from the bucket of each activity so the
// dashboard always agrees with the tracker's own categorization.
type AnalyticsService struct {
	analyticsRepo    *repository.AnalyticsRepository
	outreachRepo     *repository.OutreachRepository
	notificationRepo *repository.NotificationRepository
	commLogRepo      *repository.CommunicationLogRepository
}

func NewAnalyticsService(
	analyticsRepo *repository.AnalyticsRepository,
	outreachRepo *repository.OutreachRepository,
	notificationRepo *repository.NotificationRepository,
	commLogRepo *repository.CommunicationLogRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo:    analyticsRepo,
		outreachRepo:     outreachRepo,
		notificationRepo: notificationRepo,
		commLogRepo:      commLogRepo,
	}
}

// DefaultActivityFeedLimit caps the recent-activity feed when the caller does
// not ask for a specific size.
const DefaultActivityFeedLimit = 20

// GetRecentActivity returns the newest communication-log entries across all
// of the brand's outreach activities, newest first.
func (s *AnalyticsService) GetRecentActivity(brandID string, limit int) ([]*models.CommunicationLogResponse, error) {
	if limit <= 0 {
		limit = DefaultActivityFeedLimit
	}

	logs, err := s.commLogRepo.GetRecentByBrandID(brandID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}

	responses := make([]*models.CommunicationLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = toCommunicationLogResponse(log)
	}
	return responses, nil
}

// ComputeDashboardStats folds a slice of activities into the three headline
// counters. Activities whose status falls outside the known buckets count
// toward none of them.
func ComputeDashboardStats(activities []*models.OutreachActivity, unreadNotifications int64) models.DashboardStats {
	stats := models.DashboardStats{UnreadNotifications: unreadNotifications}
	for _, activity := range activities {
		switch activity.Status.Bucket() {
		case models.BucketActive:
			stats.ActiveOutreach++
		case models.BucketAttention:
			stats.AttentionRequired++
		case models.BucketSuccess:
			stats.SuccessfulDeals++
		}
	}
	return stats
}

// GetDashboardStats loads the brand's activities and unread notification
// count and returns the headline dashboard numbers.
func (s *AnalyticsService) GetDashboardStats(brandID string) (*models.DashboardStats, error) {
	activities, err := s.outreachRepo.List(brandID, &models.OutreachFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load outreach activities: %w", err)
	}

	unread, err := s.notificationRepo.CountUnreadByBrandID(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	stats := ComputeDashboardStats(activities, unread)
	return &stats, nil
}

// GetCampaignSummaries returns the per-campaign rollup used by the dashboard
// campaign table and the Excel export.
func (s *AnalyticsService) GetCampaignSummaries(brandID string) ([]*models.CampaignSummary, error) {
	summaries, err := s.analyticsRepo.CampaignSummaries(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign summaries: %w", err)
	}
	return summaries, nil
}
