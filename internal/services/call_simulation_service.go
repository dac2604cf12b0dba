package services

import (
	"fmt"
	"strings"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// CallSimulationService records a synthetic phone conversation for an
// outreach. It is a deterministic template-filling step, not a voice
// integration: the five turns below are fixed, the supplied display names are
// substituted literally (empty strings included), and no external provider is
// called.
type CallSimulationService struct {
	outreachRepo *repository.OutreachRepository
	commLogRepo  *repository.CommunicationLogRepository
	sseHub       *SSEHub
}

func NewCallSimulationService(
	outreachRepo *repository.OutreachRepository,
	commLogRepo *repository.CommunicationLogRepository,
	sseHub *SSEHub,
) *CallSimulationService {
	return &CallSimulationService{
		outreachRepo: outreachRepo,
		commLogRepo:  commLogRepo,
		sseHub:       sseHub,
	}
}

// CallSimulationResult is the structured outcome of a simulation run.
// Persistence failures set Success=false with a message; the call never
// panics or returns a Go error, so callers decide how fatal it is.
type CallSimulationResult struct {
	Transcript string `json:"transcript"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// callTurn is one scripted turn of the synthetic conversation
type callTurn struct {
	direction string
	text      string
}

// simulatedModels tags the synthetic rows so they are distinguishable from
// real agent traffic in the log table.
var simulatedModels = models.StringArray{"voice-sim-v1"}

// SimulateCall persists the five-turn conversation and moves the outreach to
// Waiting for Response with a canned note.
func (s *CallSimulationService) SimulateCall(outreachID, influencerName, campaignName, brandName string) *CallSimulationResult {
	turns := s.scriptTurns(influencerName, campaignName, brandName)

	outreach, err := s.outreachRepo.GetByID(outreachID)
	if err != nil {
		return &CallSimulationResult{
			Success: false,
			Error:   fmt.Sprintf("outreach not found: %v", err),
		}
	}

	var transcript strings.Builder
	for i, turn := range turns {
		speaker := "Agent"
		if turn.direction == models.DirectionInbound {
			speaker = "Influencer"
		}
		transcript.WriteString(fmt.Sprintf("%s: %s\n", speaker, turn.text))

		log := &models.CommunicationLog{
			OutreachID: outreachID,
			Channel:    "phone",
			Direction:  turn.direction,
			Subject:    fmt.Sprintf("AI voice call - turn %d", i+1),
			Transcript: turn.text,
			AIModels:   simulatedModels,
			Metadata: models.JSON{
				"simulated": true,
				"turn":      i + 1,
			},
		}

		if err := s.commLogRepo.Create(log); err != nil {
			return &CallSimulationResult{
				Transcript: transcript.String(),
				Success:    false,
				Error:      fmt.Sprintf("failed to persist call log: %v", err),
			}
		}

		if s.sseHub != nil {
			s.sseHub.BroadcastCommunicationLog(log, outreach.BrandID)
		}
	}

	note := fmt.Sprintf("AI call completed with %s; awaiting their decision", influencerName)
	if err := s.outreachRepo.UpdateStatus(outreachID, models.StatusWaitingForResponse, note, nil); err != nil {
		return &CallSimulationResult{
			Transcript: transcript.String(),
			Success:    false,
			Error:      fmt.Sprintf("failed to update outreach status: %v", err),
		}
	}

	logrus.Infof("Call simulation completed for outreach %s (%d turns)", outreachID, len(turns))

	return &CallSimulationResult{
		Transcript: transcript.String(),
		Success:    true,
	}
}

// scriptTurns fills the fixed conversation template: three outbound turns and
// two inbound replies, alternating, always starting outbound.
func (s *CallSimulationService) scriptTurns(influencerName, campaignName, brandName string) []callTurn {
	return []callTurn{
		{
			direction: models.DirectionOutbound,
			text: fmt.Sprintf(
				"Hi %s, this is the partnerships assistant calling on behalf of %s. We loved your recent content and think you'd be a great fit for our %s campaign.",
				influencerName, brandName, campaignName),
		},
		{
			direction: models.DirectionInbound,
			text: fmt.Sprintf(
				"Oh hi! Thanks for reaching out. I'd like to hear more about what %s has in mind.",
				brandName),
		},
		{
			direction: models.DirectionOutbound,
			text: fmt.Sprintf(
				"Of course. %s runs through next quarter and covers sponsored posts plus stories. Compensation is negotiable based on your rates.",
				campaignName),
		},
		{
			direction: models.DirectionInbound,
			text:      "That sounds interesting. Could you send over the brief and the deliverables so I can review them with my manager?",
		},
		{
			direction: models.DirectionOutbound,
			text: fmt.Sprintf(
				"Absolutely, %s. I'll email the full brief today. Thanks so much for your time, and we hope to work with you soon!",
				influencerName),
		},
	}
}
