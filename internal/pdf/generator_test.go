package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/donations-service/internal/model"
)

func TestGenerate_ProducesPDF(t *testing.T) {
	campaign := model.Campaign{
		ID:       uuid.New(),
		Title:    "Feed the Homeless",
		Category: model.CategoryFood,
	}
	doc := model.ReceiptDocument{
		Donation: model.DonationWithCampaign{
			Donation: model.Donation{
				ID:           uuid.New(),
				DonationType: model.DonationTypeMoney,
				Name:         "Priya Sharma",
				Email:        "priya@example.com",
				CampaignID:   campaign.ID,
				Purpose:      "General Donation",
				Amount:       150,
				Status:       model.StatusApproved,
				DonatedAt:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
			},
			CampaignTitle: campaign.Title,
		},
		Campaign: campaign,
	}

	content, err := NewGenerator().Generate(doc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("output is not a PDF, starts with %q", content[:8])
	}
}

func TestTypeLabel(t *testing.T) {
	if got := typeLabel(model.DonationTypeMoney); got != "Monetary" {
		t.Errorf("money label: got %q", got)
	}
	if got := typeLabel(model.DonationTypeGoods); got != "In-kind" {
		t.Errorf("goods label: got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(150); got != "150.00" {
		t.Errorf("got %q", got)
	}
}
