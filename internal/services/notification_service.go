package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationService handles the brand notification inbox. Rows arrive from
// external producers via the notifications queue; the UI lists them, shows
// the unread counter and marks them read.
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	sseHub           *SSEHub
	rabbitMQ         *RabbitMQService
	stopChan         chan bool
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, sseHub *SSEHub) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		sseHub:           sseHub,
		stopChan:         make(chan bool),
	}
}

// AttachRabbitMQ wires the queue consumer dependency (injected separately so
// the service works without a broker in tests and local setups)
func (s *NotificationService) AttachRabbitMQ(rabbitMQ *RabbitMQService) {
	s.rabbitMQ = rabbitMQ
}

// StartConsumer starts consuming notification events from the queue
func (s *NotificationService) StartConsumer() error {
	if s.rabbitMQ == nil {
		return fmt.Errorf("rabbitmq service not attached")
	}

	msgs, err := s.rabbitMQ.channel.Consume(
		NotificationQueue, // queue
		"",                // consumer
		true,              // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	logrus.Info("RabbitMQ consumer started for notifications queue")

	go func() {
		for {
			select {
			case <-s.stopChan:
				logrus.Info("Notification consumer stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					logrus.Warn("RabbitMQ channel closed")
					return
				}

				if err := s.processEvent(msg.Body); err != nil {
					logrus.Errorf("Failed to process notification event: %v", err)
				}
			}
		}
	}()

	return nil
}

// StopConsumer stops the queue consumer
func (s *NotificationService) StopConsumer() {
	close(s.stopChan)
}

// processEvent persists one queue event as a notification row
func (s *NotificationService) processEvent(body []byte) error {
	var event models.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal notification event: %w", err)
	}

	if event.BrandID == "" || event.Title == "" {
		logrus.Warnf("Skipping notification event with missing brand_id or title")
		return nil
	}

	notification, err := s.CreateFromEvent(&event)
	if err != nil {
		return err
	}

	logrus.Debugf("Notification %s stored for brand %s", notification.ID, notification.BrandID)
	return nil
}

// NotifyEvent raises a notification event from inside the application. With a
// broker attached the event goes through the notifications queue and reaches
// the brand via the consumer, same as external producers; without one it is
// persisted directly.
func (s *NotificationService) NotifyEvent(event *models.NotificationEvent) error {
	if s.rabbitMQ != nil {
		return s.rabbitMQ.PublishMessage(NotificationQueue, map[string]interface{}{
			"brand_id":     event.BrandID,
			"title":        event.Title,
			"message":      event.Message,
			"type":         event.Type,
			"related_type": event.RelatedType,
			"related_id":   event.RelatedID,
		})
	}

	_, err := s.CreateFromEvent(event)
	return err
}

// CreateFromEvent inserts a notification row and broadcasts it over SSE
func (s *NotificationService) CreateFromEvent(event *models.NotificationEvent) (*models.Notification, error) {
	notification := &models.Notification{
		BrandID:     event.BrandID,
		Title:       event.Title,
		Message:     event.Message,
		Type:        event.Type,
		RelatedType: event.RelatedType,
		RelatedID:   event.RelatedID,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.sseHub != nil {
		s.sseHub.BroadcastNotification(notification)
	}

	return notification, nil
}

// GetByBrand retrieves all notifications for a brand, newest first
func (s *NotificationService) GetByBrand(brandID string) ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.GetByBrandID(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a brand
func (s *NotificationService) UnreadCount(brandID string) (int64, error) {
	count, err := s.notificationRepo.CountUnreadByBrandID(brandID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead marks one notification read for the brand
func (s *NotificationService) MarkAsRead(brandID, notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(brandID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// MarkAllAsRead marks every unread notification of the brand read
func (s *NotificationService) MarkAllAsRead(brandID string) error {
	if err := s.notificationRepo.MarkAllAsRead(brandID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}
