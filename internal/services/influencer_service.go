package services

import (
	"errors"
	"fmt"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

type InfluencerService struct {
	influencerRepo      *repository.InfluencerRepository
	platformAccountRepo *repository.PlatformAccountRepository
}

func NewInfluencerService(
	influencerRepo *repository.InfluencerRepository,
	platformAccountRepo *repository.PlatformAccountRepository,
) *InfluencerService {
	return &InfluencerService{
		influencerRepo:      influencerRepo,
		platformAccountRepo: platformAccountRepo,
	}
}

// Search retrieves directory entries matching the filter, ordered by
// follower estimate descending. Range and substring filters run in SQL; the
// niche and content-type set filters are applied here over the result
// (case-sensitive exact membership). An empty result is a normal outcome.
func (s *InfluencerService) Search(filter *models.InfluencerFilter) ([]*models.Influencer, error) {
	influencers, err := s.influencerRepo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search influencers: %w", err)
	}

	if filter == nil || (filter.Niche == "" && filter.ContentType == "") {
		return influencers, nil
	}

	filtered := make([]*models.Influencer, 0, len(influencers))
	for _, influencer := range influencers {
		if filter.Niche != "" && !influencer.Niches.Contains(filter.Niche) {
			continue
		}
		if filter.ContentType != "" && !influencer.ContentTypes.Contains(filter.ContentType) {
			continue
		}
		filtered = append(filtered, influencer)
	}
	return filtered, nil
}

// GetByID retrieves an influencer with its platform-account breakdown
func (s *InfluencerService) GetByID(id string) (*models.Influencer, error) {
	influencer, err := s.influencerRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("influencer not found")
	}
	return influencer, nil
}

// Create adds a new directory entry
func (s *InfluencerService) Create(req *models.CreateInfluencerRequest) (*models.Influencer, error) {
	availability := req.Availability
	if availability == "" {
		availability = "available"
	}

	influencer := &models.Influencer{
		Name:           req.Name,
		Handle:         req.Handle,
		Bio:            req.Bio,
		Location:       req.Location,
		Niches:         models.StringArray(req.Niches),
		ContentTypes:   models.StringArray(req.ContentTypes),
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
		Availability:   availability,
		Languages:      models.StringArray(req.Languages),
	}

	if err := s.influencerRepo.Create(influencer); err != nil {
		return nil, fmt.Errorf("failed to create influencer: %w", err)
	}
	return influencer, nil
}

// UpsertPlatformAccount records the per-platform follower breakdown for an
// influencer
func (s *InfluencerService) UpsertPlatformAccount(influencerID string, req *models.UpsertPlatformAccountRequest) (*models.PlatformAccount, error) {
	if _, err := s.influencerRepo.GetByID(influencerID); err != nil {
		return nil, errors.New("influencer not found")
	}

	account := &models.PlatformAccount{
		InfluencerID:   influencerID,
		Platform:       req.Platform,
		Followers:      req.Followers,
		EngagementRate: req.EngagementRate,
	}

	if err := s.platformAccountRepo.Upsert(account); err != nil {
		return nil, fmt.Errorf("failed to upsert platform account: %w", err)
	}
	return account, nil
}

// GetPlatformAccounts retrieves the per-platform breakdown for an influencer
func (s *InfluencerService) GetPlatformAccounts(influencerID string) ([]*models.PlatformAccount, error) {
	accounts, err := s.platformAccountRepo.GetByInfluencerID(influencerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform accounts: %w", err)
	}
	return accounts, nil
}
