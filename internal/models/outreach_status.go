package models

// OutreachStatus is the lifecycle label of an outreach activity. The set of
// labels is closed; legacy spellings are canonicalized on parse.
type OutreachStatus string

const (
	StatusAIDrafting         OutreachStatus = "AI Drafting"
	StatusAIReachingOut      OutreachStatus = "AI Reaching Out"
	StatusWaitingForResponse OutreachStatus = "Waiting for Response"
	StatusPositiveInterest   OutreachStatus = "Response - Positive Interest"
	StatusNotInterested      OutreachStatus = "Response - Not Interested"
	StatusNegotiating        OutreachStatus = "Negotiating"
	StatusNeedsMoreInfo      OutreachStatus = "Response - Needs More Information"
	StatusPaymentLinkSent    OutreachStatus = "Payment Link Sent"
	StatusContractSent       OutreachStatus = "Contract Sent"
	StatusContractSigned     OutreachStatus = "Contract Signed"
	StatusDealFinalized      OutreachStatus = "Deal Finalized"
	StatusNeedsHumanHelp     OutreachStatus = "Issue: AI Needs Human Help"
)

// legacyStatusLabels maps retired spellings to their canonical form
var legacyStatusLabels = map[string]OutreachStatus{
	"Response - In Negotiation": StatusNegotiating,
}

// ParseOutreachStatus canonicalizes a status label. Unknown labels pass
// through unchanged; Bucket sends them to BucketOther.
func ParseOutreachStatus(s string) OutreachStatus {
	if canonical, ok := legacyStatusLabels[s]; ok {
		return canonical
	}
	return OutreachStatus(s)
}

// Known reports whether the status is part of the canonical taxonomy
func (s OutreachStatus) Known() bool {
	switch s {
	case StatusAIDrafting, StatusAIReachingOut, StatusWaitingForResponse,
		StatusPositiveInterest, StatusNotInterested, StatusNegotiating,
		StatusNeedsMoreInfo, StatusPaymentLinkSent, StatusContractSent,
		StatusContractSigned, StatusDealFinalized, StatusNeedsHumanHelp:
		return true
	}
	return false
}

// StatusBucket is the dashboard categorization of a status
type StatusBucket string

const (
	BucketActive    StatusBucket = "active"
	BucketAttention StatusBucket = "attention"
	BucketSuccess   StatusBucket = "success"
	BucketOther     StatusBucket = "other"
)

// Bucket maps a status to its dashboard counter. Each status lands in
// exactly one bucket; anything outside the taxonomy is BucketOther.
func (s OutreachStatus) Bucket() StatusBucket {
	switch s {
	case StatusAIDrafting, StatusAIReachingOut, StatusWaitingForResponse,
		StatusPositiveInterest, StatusNegotiating:
		return BucketActive
	case StatusNeedsHumanHelp:
		return BucketAttention
	case StatusDealFinalized, StatusContractSigned:
		return BucketSuccess
	case StatusNotInterested, StatusNeedsMoreInfo, StatusPaymentLinkSent,
		StatusContractSent:
		return BucketOther
	default:
		return BucketOther
	}
}

// IsPositiveResponse reports whether the influencer has shown interest
func (s OutreachStatus) IsPositiveResponse() bool {
	return s == StatusPositiveInterest || s == StatusNegotiating
}

// IsDeal reports whether the outreach concluded in a deal
func (s OutreachStatus) IsDeal() bool {
	return s == StatusDealFinalized || s == StatusContractSigned
}

// BadgeVariant returns the UI badge style for a status. Statuses outside the
// taxonomy fall back to the waiting style.
func (s OutreachStatus) BadgeVariant() string {
	switch s {
	case StatusAIDrafting, StatusAIReachingOut:
		return "drafting"
	case StatusWaitingForResponse, StatusNeedsMoreInfo:
		return "waiting"
	case StatusPositiveInterest, StatusNegotiating:
		return "positive"
	case StatusNotInterested:
		return "negative"
	case StatusPaymentLinkSent, StatusContractSent:
		return "pending"
	case StatusContractSigned, StatusDealFinalized:
		return "success"
	case StatusNeedsHumanHelp:
		return "attention"
	default:
		return "waiting"
	}
}

// AllStatuses lists the canonical taxonomy in lifecycle order
func AllStatuses() []OutreachStatus {
	return []OutreachStatus{
		StatusAIDrafting,
		StatusAIReachingOut,
		StatusWaitingForResponse,
		StatusPositiveInterest,
		StatusNotInterested,
		StatusNegotiating,
		StatusNeedsMoreInfo,
		StatusPaymentLinkSent,
		StatusContractSent,
		StatusContractSigned,
		StatusDealFinalized,
		StatusNeedsHumanHelp,
	}
}
