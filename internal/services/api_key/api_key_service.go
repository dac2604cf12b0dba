package api_key

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Service manages the API keys that authenticate AI agents calling back into
// the agent endpoints.
type Service struct {
	db         *gorm.DB
	apiKeyRepo *repository.APIKeyRepository
	userRepo   *repository.UserRepository
}

// NewService creates a new API key service
func NewService(db *gorm.DB) *Service {
	return &Service{
		db:         db,
		apiKeyRepo: repository.NewAPIKeyRepository(db),
		userRepo:   repository.NewUserRepository(db),
	}
}

// GenerateAPIKey issues a fresh API key for a user, replacing any existing one.
func (s *Service) GenerateAPIKey(userID string) (*models.APIKey, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if !user.IsActive {
		return nil, errors.New("user is not active")
	}

	existing, err := s.apiKeyRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing API key: %w", err)
	}
	if existing != nil {
		if _, err := s.apiKeyRepo.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete existing API key: %w", err)
		}
	}

	key, err := s.generateRandomKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}

	apiKey := &models.APIKey{
		Key:      key,
		UserID:   userID,
		IsActive: true,
	}

	created, err := s.apiKeyRepo.Create(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}
	return created, nil
}

// ValidateAPIKey validates an API key and returns the user that owns it.
func (s *Service) ValidateAPIKey(key string) (*models.User, error) {
	apiKey, err := s.apiKeyRepo.GetByKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get API key: %w", err)
	}
	if apiKey == nil {
		return nil, errors.New("invalid API key")
	}
	if !apiKey.IsActive {
		return nil, errors.New("API key is disabled")
	}

	user, err := s.userRepo.GetByID(apiKey.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if !user.IsActive {
		return nil, errors.New("user is not active")
	}

	if err := s.apiKeyRepo.UpdateLastUsed(apiKey.ID); err != nil {
		// Tracking last use is best-effort; the request itself is fine.
		logrus.Warnf("Failed to update API key last used timestamp: %v", err)
	}

	return user, nil
}

// GetAPIKeyByUserID returns the user's API key, or (nil, nil) when none exists.
func (s *Service) GetAPIKeyByUserID(userID string) (*models.APIKey, error) {
	return s.apiKeyRepo.GetByUserID(userID)
}

// DeleteAPIKey revokes a user's API key. Returns an error when no key exists.
func (s *Service) DeleteAPIKey(userID string) error {
	existing, err := s.apiKeyRepo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to get API key: %w", err)
	}
	if existing == nil {
		return errors.New("API key not found")
	}
	if _, err := s.apiKeyRepo.Delete(existing.ID); err != nil {
		return fmt.Errorf("failed to delete API key: %w", err)
	}
	return nil
}

func (s *Service) generateRandomKey() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
