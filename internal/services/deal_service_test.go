package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

func newDealService(db *gorm.DB) *DealService {
	return NewDealService(
		repository.NewDealRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewOutreachRepository(db),
	)
}

func TestCreateDealDenormalizesOutreachIDs(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)

	deal, err := newDealService(db).CreateDeal(brand.ID, &models.CreateDealRequest{
		OutreachID:   outreach.ID,
		AgreedRate:   35000,
		Deliverables: "2 Reels + 3 Stories",
		Timeline:     "4 weeks",
	})
	require.NoError(t, err)

	assert.Equal(t, campaign.ID, deal.CampaignID)
	assert.Equal(t, influencer.ID, deal.InfluencerID)
	assert.Equal(t, brand.ID, deal.BrandID)
	assert.Equal(t, "INR", deal.Currency)
}

func TestCreateDealIsOnePerOutreach(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)
	service := newDealService(db)

	_, err := service.CreateDeal(brand.ID, &models.CreateDealRequest{OutreachID: outreach.ID, AgreedRate: 35000})
	require.NoError(t, err)

	_, err = service.CreateDeal(brand.ID, &models.CreateDealRequest{OutreachID: outreach.ID, AgreedRate: 40000})
	require.Error(t, err)
	assert.Equal(t, "a deal already exists for this outreach", err.Error())
}

func TestCreateDealScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)

	_, err := newDealService(db).CreateDeal(otherBrand.ID, &models.CreateDealRequest{OutreachID: outreach.ID, AgreedRate: 35000})
	require.Error(t, err)
	assert.Equal(t, "outreach not found", err.Error())
}

func TestUpdateDealStatusLeavesCommercialTermsUntouched(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)
	service := newDealService(db)

	deal, err := service.CreateDeal(brand.ID, &models.CreateDealRequest{OutreachID: outreach.ID, AgreedRate: 35000})
	require.NoError(t, err)

	sentAt := time.Now()
	updated, err := service.UpdateDealStatus(brand.ID, deal.ID, &models.UpdateDealStatusRequest{
		ESignProvider:  "docusign",
		ESignStatus:    "sent",
		ContractSentAt: &sentAt,
	})
	require.NoError(t, err)

	assert.Equal(t, "docusign", updated.ESignProvider)
	assert.Equal(t, "sent", updated.ESignStatus)
	require.NotNil(t, updated.ContractSentAt)
	assert.EqualValues(t, 35000, updated.AgreedRate)
}

func TestCreatePaymentInheritsDealCurrency(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)
	service := newDealService(db)

	deal, err := service.CreateDeal(brand.ID, &models.CreateDealRequest{
		OutreachID: outreach.ID,
		AgreedRate: 35000,
		Currency:   "USD",
	})
	require.NoError(t, err)

	payment, err := service.CreatePayment(brand.ID, deal.ID, &models.CreatePaymentRequest{
		Amount:  17500,
		Gateway: "razorpay",
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", payment.Currency)
	assert.Equal(t, "pending", payment.Status)

	payments, err := service.GetPayments(brand.ID, deal.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestGetDealByIDScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusDealFinalized)
	service := newDealService(db)

	deal, err := service.CreateDeal(brand.ID, &models.CreateDealRequest{OutreachID: outreach.ID, AgreedRate: 35000})
	require.NoError(t, err)

	_, err = service.GetDealByID(otherBrand.ID, deal.ID)
	require.Error(t, err)
	assert.Equal(t, "deal not found", err.Error())

	_, err = service.GetPayments(otherBrand.ID, deal.ID)
	require.Error(t, err)
	assert.Equal(t, "deal not found", err.Error())
}
