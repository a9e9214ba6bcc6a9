package model

import (
	"time"

	"github.com/google/uuid"
)

type CampaignCategory string

const (
	CategoryEducation      CampaignCategory = "EDUCATION"
	CategoryFood           CampaignCategory = "FOOD"
	CategoryClothes        CampaignCategory = "CLOTHES"
	CategoryMedical        CampaignCategory = "MEDICAL"
	CategoryInfrastructure CampaignCategory = "INFRASTRUCTURE"
	CategoryShelter        CampaignCategory = "SHELTER"
)

func (c CampaignCategory) Valid() bool {
	switch c {
	case CategoryEducation, CategoryFood, CategoryClothes,
		CategoryMedical, CategoryInfrastructure, CategoryShelter:
		return true
	}
	return false
}

type Campaign struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Category        CampaignCategory
	GoalAmount      float64
	CollectedAmount float64
	CreatedByID     uuid.UUID
	CreatedAt       time.Time
}
