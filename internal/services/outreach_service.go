package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// OutreachService owns the outreach lifecycle: creation with the
// duplicate-tuple guard, status transitions (last write wins, timestamp
// stamped on every update) and the communication-log append path used by
// agent callbacks.
type OutreachService struct {
	outreachRepo        *repository.OutreachRepository
	campaignRepo        *repository.CampaignRepository
	influencerRepo      *repository.InfluencerRepository
	commLogRepo         *repository.CommunicationLogRepository
	callSimService      *CallSimulationService
	sseHub              *SSEHub
	notificationService *NotificationService
}

func NewOutreachService(
	outreachRepo *repository.OutreachRepository,
	campaignRepo *repository.CampaignRepository,
	influencerRepo *repository.InfluencerRepository,
	commLogRepo *repository.CommunicationLogRepository,
	callSimService *CallSimulationService,
	sseHub *SSEHub,
) *OutreachService {
	return &OutreachService{
		outreachRepo:   outreachRepo,
		campaignRepo:   campaignRepo,
		influencerRepo: influencerRepo,
		commLogRepo:    commLogRepo,
		callSimService: callSimService,
		sseHub:         sseHub,
	}
}

// CreateOutreach initiates outreach for a campaign/influencer pair. A second
// outreach with the same (campaign, influencer, method, brand) tuple is
// rejected with an error naming the existing record's status. For the phone
// method with display names supplied, the call simulation runs synchronously
// after the insert; its failure is logged and never fails the creation.
func (s *OutreachService) CreateOutreach(brandID string, req *models.CreateOutreachRequest) (*models.OutreachResponse, error) {
	method := models.OutreachMethod(req.Method)
	if !method.IsValid() {
		return nil, errors.New("invalid outreach method")
	}

	// Verify the campaign belongs to this brand
	if _, err := s.campaignRepo.GetByBrandIDAndID(brandID, req.CampaignID); err != nil {
		return nil, errors.New("campaign not found")
	}

	// Verify the influencer exists
	if _, err := s.influencerRepo.GetByID(req.InfluencerID); err != nil {
		return nil, errors.New("influencer not found")
	}

	// Duplicate-tuple guard. The unique index created in migrations backs
	// this up against concurrent creations.
	existing, err := s.outreachRepo.FindByTuple(req.CampaignID, req.InfluencerID, method, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing outreach: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf(
			"outreach already exists for this influencer on this campaign via %s (current status: %s)",
			method, existing.Status)
	}

	status := models.ParseOutreachStatus(req.Status)
	if req.Status == "" {
		status = models.StatusAIDrafting
	}

	now := time.Now()
	outreach := &models.OutreachActivity{
		CampaignID:         req.CampaignID,
		InfluencerID:       req.InfluencerID,
		BrandID:            brandID,
		Method:             method,
		AgentName:          req.AgentName,
		Status:             status,
		InitiatedAt:        now,
		LastStatusUpdateAt: now,
	}

	if err := s.outreachRepo.Create(outreach); err != nil {
		return nil, fmt.Errorf("failed to create outreach: %w", err)
	}

	// Phone-method side effect. Non-fatal: outreach creation already
	// succeeded, a failed simulation only loses the synthetic transcript.
	if method == models.MethodPhone && req.InfluencerName != "" {
		result := s.callSimService.SimulateCall(outreach.ID, req.InfluencerName, req.CampaignName, req.BrandName)
		if !result.Success {
			logrus.Warnf("Call simulation failed for outreach %s: %s", outreach.ID, result.Error)
		} else if refreshed, err := s.outreachRepo.GetByID(outreach.ID); err == nil {
			outreach = refreshed
		}
	}

	return toOutreachResponse(outreach), nil
}

// GetOutreach retrieves one outreach activity scoped to its brand
func (s *OutreachService) GetOutreach(brandID, outreachID string) (*models.OutreachResponse, error) {
	outreach, err := s.outreachRepo.GetByBrandIDAndID(brandID, outreachID)
	if err != nil {
		return nil, errors.New("outreach not found")
	}
	return toOutreachResponse(outreach), nil
}

// ListOutreach retrieves the brand's outreach activities matching the filter,
// most recently updated first
func (s *OutreachService) ListOutreach(brandID string, filter *models.OutreachFilter) ([]*models.OutreachResponse, error) {
	activities, err := s.outreachRepo.List(brandID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list outreach: %w", err)
	}

	responses := make([]*models.OutreachResponse, len(activities))
	for i, activity := range activities {
		responses[i] = toOutreachResponse(activity)
	}
	return responses, nil
}

// UpdateStatus applies a status transition. Transitions are not validated
// (any caller may set any status); the update stamps last_status_update_at.
func (s *OutreachService) UpdateStatus(brandID, outreachID string, req *models.UpdateOutreachStatusRequest) (*models.OutreachResponse, error) {
	outreach, err := s.outreachRepo.GetByBrandIDAndID(brandID, outreachID)
	if err != nil {
		return nil, errors.New("outreach not found")
	}

	status := models.ParseOutreachStatus(req.Status)
	if err := s.outreachRepo.UpdateStatus(outreach.ID, status, req.Notes, req.NextFollowUpAt); err != nil {
		return nil, fmt.Errorf("failed to update outreach status: %w", err)
	}

	updated, err := s.outreachRepo.GetByID(outreach.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload outreach: %w", err)
	}
	return toOutreachResponse(updated), nil
}

// SimulateCall runs the call simulation for an existing outreach. Unlike the
// creation-time side effect, failures here are surfaced to the caller.
func (s *OutreachService) SimulateCall(brandID, outreachID, influencerName, campaignName, brandName string) (*CallSimulationResult, error) {
	if _, err := s.outreachRepo.GetByBrandIDAndID(brandID, outreachID); err != nil {
		return nil, errors.New("outreach not found")
	}
	return s.callSimService.SimulateCall(outreachID, influencerName, campaignName, brandName), nil
}

// GetCommunicationLogs retrieves the conversation for an outreach in replay
// order (oldest first)
func (s *OutreachService) GetCommunicationLogs(brandID, outreachID string) ([]*models.CommunicationLogResponse, error) {
	if _, err := s.outreachRepo.GetByBrandIDAndID(brandID, outreachID); err != nil {
		return nil, errors.New("outreach not found")
	}

	logs, err := s.commLogRepo.GetByOutreachID(outreachID)
	if err != nil {
		return nil, fmt.Errorf("failed to get communication logs: %w", err)
	}

	responses := make([]*models.CommunicationLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = toCommunicationLogResponse(log)
	}
	return responses, nil
}

// AppendCommunicationLog records an agent-reported message on an outreach and
// broadcasts it to live feeds.
func (s *OutreachService) AppendCommunicationLog(req *models.CreateCommunicationLogRequest) (*models.CommunicationLog, error) {
	outreach, err := s.outreachRepo.GetByID(req.OutreachID)
	if err != nil {
		return nil, errors.New("outreach not found")
	}

	var metadata models.JSON
	if req.Metadata != nil {
		metadata = models.JSON(req.Metadata)
	}

	log := &models.CommunicationLog{
		OutreachID: req.OutreachID,
		Channel:    req.Channel,
		Direction:  req.Direction,
		Subject:    req.Subject,
		Transcript: req.Transcript,
		AIModels:   models.StringArray(req.AIModels),
		Metadata:   metadata,
	}

	if err := s.commLogRepo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create communication log: %w", err)
	}

	if s.sseHub != nil {
		s.sseHub.BroadcastCommunicationLog(log, outreach.BrandID)
	}

	return log, nil
}

// AttachNotifications wires the notification producer used for
// attention-required alerts on agent-reported transitions (injected
// separately, same as NotificationService.AttachRabbitMQ)
func (s *OutreachService) AttachNotifications(notificationService *NotificationService) {
	s.notificationService = notificationService
}

// AgentUpdateStatus applies a status transition reported by an external agent
// (API-key path, not scoped to a session brand). Transitions that land in the
// attention bucket raise a notification for the owning brand; a failed
// notification is logged and never fails the update.
func (s *OutreachService) AgentUpdateStatus(outreachID string, req *models.UpdateOutreachStatusRequest) (*models.OutreachResponse, error) {
	outreach, err := s.outreachRepo.GetByID(outreachID)
	if err != nil {
		return nil, errors.New("outreach not found")
	}

	status := models.ParseOutreachStatus(req.Status)
	if err := s.outreachRepo.UpdateStatus(outreach.ID, status, req.Notes, req.NextFollowUpAt); err != nil {
		return nil, fmt.Errorf("failed to update outreach status: %w", err)
	}

	updated, err := s.outreachRepo.GetByID(outreach.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload outreach: %w", err)
	}

	if s.notificationService != nil && status.Bucket() == models.BucketAttention {
		event := &models.NotificationEvent{
			BrandID:     updated.BrandID,
			Title:       "Outreach needs your attention",
			Message:     fmt.Sprintf("An agent moved an outreach to %q and requested human help", status),
			Type:        "attention_required",
			RelatedType: "outreach",
			RelatedID:   updated.ID,
		}
		if err := s.notificationService.NotifyEvent(event); err != nil {
			logrus.Errorf("Failed to raise attention notification for outreach %s: %v", updated.ID, err)
		}
	}

	return toOutreachResponse(updated), nil
}

// toOutreachResponse maps the entity plus its derived presentation fields
func toOutreachResponse(outreach *models.OutreachActivity) *models.OutreachResponse {
	return &models.OutreachResponse{
		ID:                 outreach.ID,
		CampaignID:         outreach.CampaignID,
		InfluencerID:       outreach.InfluencerID,
		BrandID:            outreach.BrandID,
		Method:             string(outreach.Method),
		AgentName:          outreach.AgentName,
		Status:             string(outreach.Status),
		StatusBucket:       string(outreach.Status.Bucket()),
		BadgeVariant:       outreach.Status.BadgeVariant(),
		InitiatedAt:        outreach.InitiatedAt,
		LastStatusUpdateAt: outreach.LastStatusUpdateAt,
		NextFollowUpAt:     outreach.NextFollowUpAt,
		Notes:              outreach.Notes,
	}
}

// toCommunicationLogResponse maps a log row to its API shape. Shared by the
// per-outreach conversation view and the brand recent-activity feed.
func toCommunicationLogResponse(log *models.CommunicationLog) *models.CommunicationLogResponse {
	return &models.CommunicationLogResponse{
		ID:         log.ID,
		OutreachID: log.OutreachID,
		Channel:    log.Channel,
		Direction:  log.Direction,
		Subject:    log.Subject,
		Transcript: log.Transcript,
		AIModels:   []string(log.AIModels),
		Metadata:   log.Metadata,
		CreatedAt:  log.CreatedAt,
	}
}
