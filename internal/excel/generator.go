package excel

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/donations-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders a donations report: a summary sheet plus one sheet per
// campaign with the matching donations.
func (g *Generator) Generate(report model.DonationReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, group := range report.Groups {
		sheetName := buildSheetName(group.Campaign.Title, group.Campaign.ID, usedNames)
		usedNames[sheetName] = struct{}{}

		file.NewSheet(sheetName)
		if err := g.writeDetail(file, sheetName, group); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.DonationReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	statusLabel := "All"
	if report.Status != nil {
		statusLabel = string(*report.Status)
	}

	set("A1", "Status filter")
	set("B1", statusLabel)
	set("A2", "Generated at")
	set("B2", report.GeneratedAt.Format("2006-01-02 15:04"))
	set("A3", "Campaigns")
	set("B3", len(report.Groups))
	set("A4", "Grand total")
	set("B4", report.GrandTotal)

	headers := []string{"Campaign", "Category", "Goal", "Collected", "Donations", "Subtotal"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 6)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for rowIdx, group := range report.Groups {
		values := []interface{}{
			group.Campaign.Title,
			string(group.Campaign.Category),
			group.Campaign.GoalAmount,
			group.Campaign.CollectedAmount,
			len(group.Donations),
			group.Subtotal,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+7)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group model.CampaignGroup) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Campaign")
	set("B1", group.Campaign.Title)
	set("A2", "Subtotal")
	set("B2", group.Subtotal)

	headers := []string{"Donor", "Type", "Email", "Phone", "Amount", "Status", "Donated at", "Purpose"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for rowIdx, donation := range group.Donations {
		values := []interface{}{
			donation.Name,
			string(donation.DonationType),
			donation.Email,
			donation.Phone,
			donation.Amount,
			string(donation.Status),
			donation.DonatedAt.Format("2006-01-02 15:04"),
			donation.Purpose,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			if err != nil {
				return err
			}
			set(cell, value)
		}
	}
	return nil
}

// buildSheetName keeps names unique and inside the 31-char sheet limit.
func buildSheetName(title string, id uuid.UUID, used map[string]struct{}) string {
	name := sanitizeSheetName(title)
	if name == "" {
		name = id.String()[:8]
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if _, exists := used[name]; !exists {
		return name
	}

	suffix := id.String()[:8]
	base := name
	if len(base)+len(suffix)+1 > 31 {
		base = base[:31-len(suffix)-1]
	}
	return fmt.Sprintf("%s-%s", base, suffix)
}

func sanitizeSheetName(input string) string {
	replacer := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "-", "*", "-", "[", "(", "]", ")")
	return strings.TrimSpace(replacer.Replace(input))
}
