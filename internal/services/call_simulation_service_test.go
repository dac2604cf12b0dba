package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

func newCallSimService(db *gorm.DB) *CallSimulationService {
	return NewCallSimulationService(
		repository.NewOutreachRepository(db),
		repository.NewCommunicationLogRepository(db),
		nil,
	)
}

func TestSimulateCallPersistsFiveTurnConversation(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodPhone, models.StatusAIDrafting)

	service := newCallSimService(db)
	result := service.SimulateCall(outreach.ID, "Ananya Kapoor", "Diwali Glow Launch", "Glow Cosmetics")

	require.True(t, result.Success, "simulation failed: %s", result.Error)
	assert.Empty(t, result.Error)
	assert.Contains(t, result.Transcript, "Ananya Kapoor")
	assert.Contains(t, result.Transcript, "Diwali Glow Launch")
	assert.Contains(t, result.Transcript, "Glow Cosmetics")

	var logs []*models.CommunicationLog
	require.NoError(t, db.Where("outreach_id = ?", outreach.ID).Order("created_at ASC").Find(&logs).Error)
	require.Len(t, logs, 5)

	wantDirections := []string{
		models.DirectionOutbound,
		models.DirectionInbound,
		models.DirectionOutbound,
		models.DirectionInbound,
		models.DirectionOutbound,
	}
	for i, log := range logs {
		assert.Equal(t, wantDirections[i], log.Direction, "turn %d", i+1)
		assert.Equal(t, "phone", log.Channel)
		assert.Equal(t, fmt.Sprintf("AI voice call - turn %d", i+1), log.Subject)
		assert.Equal(t, models.StringArray{"voice-sim-v1"}, log.AIModels)
		assert.Equal(t, true, log.Metadata["simulated"])
		assert.NotEmpty(t, log.Transcript)
	}
}

func TestSimulateCallMovesOutreachToWaitingForResponse(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Rohan Mehta", 80000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodPhone, models.StatusAIDrafting)

	result := newCallSimService(db).SimulateCall(outreach.ID, "Rohan Mehta", "Summer Fit", "FitFuel")
	require.True(t, result.Success)

	var updated models.OutreachActivity
	require.NoError(t, db.First(&updated, "id = ?", outreach.ID).Error)
	assert.Equal(t, models.StatusWaitingForResponse, updated.Status)
	assert.Equal(t, "AI call completed with Rohan Mehta; awaiting their decision", updated.Notes)
	assert.True(t, updated.LastStatusUpdateAt.After(outreach.LastStatusUpdateAt) ||
		updated.LastStatusUpdateAt.Equal(outreach.LastStatusUpdateAt))
}

func TestSimulateCallWithEmptyNamesStillSucceeds(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Unnamed", 1000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodPhone, models.StatusAIDrafting)

	result := newCallSimService(db).SimulateCall(outreach.ID, "", "", "")
	require.True(t, result.Success)

	var count int64
	require.NoError(t, db.Model(&models.CommunicationLog{}).Where("outreach_id = ?", outreach.ID).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestSimulateCallUnknownOutreachReportsFailure(t *testing.T) {
	db := newTestDB(t)

	result := newCallSimService(db).SimulateCall("00000000-0000-0000-0000-000000000000", "A", "B", "C")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "outreach not found")

	var count int64
	require.NoError(t, db.Model(&models.CommunicationLog{}).Count(&count).Error)
	assert.Zero(t, count)
}
