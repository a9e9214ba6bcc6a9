package model

import "github.com/google/uuid"

// Organization is a partner directory entry shown on the dashboard.
type Organization struct {
	ID         uuid.UUID
	Name       string
	WebsiteURL string
	Category   CampaignCategory
	ImageRef   *string
}
