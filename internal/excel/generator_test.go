package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/donations-service/internal/model"
)

func sampleReport() model.DonationReport {
	campaign := model.Campaign{
		ID:              uuid.New(),
		Title:           "Feed the Homeless",
		Category:        model.CategoryFood,
		GoalAmount:      10000,
		CollectedAmount: 150,
	}
	donation := model.DonationWithCampaign{
		Donation: model.Donation{
			ID:           uuid.New(),
			DonationType: model.DonationTypeMoney,
			Name:         "Priya Sharma",
			Email:        "priya@example.com",
			Phone:        "9876543210",
			CampaignID:   campaign.ID,
			Purpose:      "General Donation",
			Amount:       150,
			Status:       model.StatusApproved,
			DonatedAt:    time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		},
		CampaignTitle: campaign.Title,
	}
	return model.DonationReport{
		GeneratedAt: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		Groups: []model.CampaignGroup{
			{Campaign: campaign, Donations: []model.DonationWithCampaign{donation}, Subtotal: 150},
		},
		GrandTotal: 150,
	}
}

func TestGenerate_SheetsAndCells(t *testing.T) {
	content, err := NewGenerator().Generate(sampleReport())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("sheets: got %v", sheets)
	}
	if sheets[0] != "Summary" {
		t.Errorf("first sheet: got %q", sheets[0])
	}
	if sheets[1] != "Feed the Homeless" {
		t.Errorf("campaign sheet: got %q", sheets[1])
	}

	statusLabel, err := file.GetCellValue("Summary", "B1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if statusLabel != "All" {
		t.Errorf("status label: got %q", statusLabel)
	}

	donor, err := file.GetCellValue("Feed the Homeless", "A5")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if donor != "Priya Sharma" {
		t.Errorf("donor cell: got %q", donor)
	}
}

func TestBuildSheetName(t *testing.T) {
	used := map[string]struct{}{"Summary": {}}

	long := buildSheetName("A Very Long Campaign Title That Exceeds The Sheet Limit", uuid.New(), used)
	if len(long) > 31 {
		t.Errorf("name exceeds limit: %q (%d)", long, len(long))
	}

	used[long] = struct{}{}
	id := uuid.New()
	duplicate := buildSheetName("A Very Long Campaign Title That Exceeds The Sheet Limit", id, used)
	if duplicate == long {
		t.Error("duplicate name not disambiguated")
	}
	if len(duplicate) > 31 {
		t.Errorf("disambiguated name exceeds limit: %q", duplicate)
	}

	invalid := buildSheetName("Food / Shelter: Q1 [2026]", uuid.New(), used)
	for _, forbidden := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		if bytes.Contains([]byte(invalid), []byte(forbidden)) {
			t.Errorf("forbidden character %q in %q", forbidden, invalid)
		}
	}
}
