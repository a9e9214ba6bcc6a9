package model

import "time"

// DonationReport feeds the xlsx export: one group per campaign with the
// donations that matched the filter.
type DonationReport struct {
	Status      *ApprovalStatus
	GeneratedAt time.Time
	Groups      []CampaignGroup
	GrandTotal  float64
}

type CampaignGroup struct {
	Campaign  Campaign
	Donations []DonationWithCampaign
	Subtotal  float64
}

// ReceiptDocument feeds the PDF receipt for an approved donation.
type ReceiptDocument struct {
	Donation DonationWithCampaign
	Campaign Campaign
}
