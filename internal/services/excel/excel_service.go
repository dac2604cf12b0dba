package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Service writes dashboard data to Excel workbooks: the outreach tracker and
// the per-campaign summary table.
type Service struct {
	outreachRepo  *repository.OutreachRepository
	analyticsRepo *repository.AnalyticsRepository
	exportsDir    string
}

// NewExcelService creates a new Excel service instance
func NewExcelService(
	outreachRepo *repository.OutreachRepository,
	analyticsRepo *repository.AnalyticsRepository,
	exportsDir string) *Service {
	// Create exports directory if it doesn't exist
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}

	return &Service{
		outreachRepo:  outreachRepo,
		analyticsRepo: analyticsRepo,
		exportsDir:    exportsDir,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool
	Message  string
	Filename string
}

// GetExportFilePath returns the absolute path of a previously exported file.
func (s *Service) GetExportFilePath(filename string) string {
	return filepath.Join(s.exportsDir, filepath.Base(filename))
}

// ExportOutreachToExcel writes the brand's outreach tracker and campaign
// summaries to a two-sheet workbook. Rows are colored by status bucket.
func (s *Service) ExportOutreachToExcel(brandID string) (*ExportResult, error) {
	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("outreach_%s_%d.xlsx", brandID, timestamp)
	filePath := filepath.Join(s.exportsDir, filename)

	activities, err := s.outreachRepo.ListWithRelations(brandID, &models.OutreachFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load outreach activities: %w", err)
	}

	summaries, err := s.analyticsRepo.CampaignSummaries(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign summaries: %w", err)
	}

	f := excelize.NewFile()

	// Row styles keyed by status bucket
	activeStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"B4C6E7"}, // Light blue
			Pattern: 1,
		},
	})

	attentionStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFC000"}, // Orange
			Pattern: 1,
		},
	})

	successStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"C6E0B4"}, // Light green
			Pattern: 1,
		},
	})

	otherStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"}, // Gray
			Pattern: 1,
		},
	})

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	// Outreach sheet
	outreachSheet := "Outreach"
	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, outreachSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	outreachColumns := []string{
		"id", "campaign", "influencer", "method", "agent_name",
		"status", "bucket", "initiated_at", "last_status_update_at",
		"next_follow_up_at", "notes",
	}

	for i, col := range outreachColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(outreachSheet, cell, col)
	}
	f.SetCellStyle(outreachSheet, "A1", columnToLetter(len(outreachColumns))+strconv.Itoa(1), headerStyle)

	for i, col := range outreachColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0
		switch col {
		case "id":
			width = 38.0
		case "campaign", "influencer":
			width = 25.0
		case "method", "agent_name", "bucket":
			width = 12.0
		case "notes":
			width = 50.0
		}
		f.SetColWidth(outreachSheet, colLetter, colLetter, width)
	}

	for j, activity := range activities {
		rowNum := j + 2

		followUp := ""
		if activity.NextFollowUpAt != nil {
			followUp = activity.NextFollowUpAt.Format(time.RFC3339)
		}

		rowValues := []interface{}{
			activity.ID,
			activity.Campaign.Name,
			activity.Influencer.Name,
			string(activity.Method),
			activity.AgentName,
			string(activity.Status),
			string(activity.Status.Bucket()),
			activity.InitiatedAt.Format(time.RFC3339),
			activity.LastStatusUpdateAt.Format(time.RFC3339),
			followUp,
			activity.Notes,
		}

		for i, value := range rowValues {
			cell := fmt.Sprintf("%s%d", columnToLetter(i+1), rowNum)
			f.SetCellValue(outreachSheet, cell, value)
		}

		rowStyle := otherStyle
		switch activity.Status.Bucket() {
		case models.BucketActive:
			rowStyle = activeStyle
		case models.BucketAttention:
			rowStyle = attentionStyle
		case models.BucketSuccess:
			rowStyle = successStyle
		}
		f.SetCellStyle(outreachSheet,
			fmt.Sprintf("A%d", rowNum),
			fmt.Sprintf("%s%d", columnToLetter(len(outreachColumns)), rowNum),
			rowStyle)
	}

	if len(activities) == 0 {
		f.SetCellValue(outreachSheet, "A2", "no outreach activities found")
	}

	// Campaign Summary sheet
	summarySheet := "Campaign Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summaryColumns := []string{
		"campaign_id", "campaign_name", "total_outreach",
		"positive_responses", "negotiations", "finalized_deals", "total_deal_value",
	}

	for i, col := range summaryColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(summarySheet, cell, col)
	}
	f.SetCellStyle(summarySheet, "A1", columnToLetter(len(summaryColumns))+strconv.Itoa(1), headerStyle)

	f.SetColWidth(summarySheet, "A", "A", 38.0)
	f.SetColWidth(summarySheet, "B", "B", 30.0)
	f.SetColWidth(summarySheet, "C", columnToLetter(len(summaryColumns)), 18.0)

	for j, summary := range summaries {
		rowNum := j + 2
		rowValues := []interface{}{
			summary.CampaignID,
			summary.CampaignName,
			summary.TotalOutreach,
			summary.PositiveResponses,
			summary.Negotiations,
			summary.FinalizedDeals,
			summary.TotalDealValue,
		}
		for i, value := range rowValues {
			cell := fmt.Sprintf("%s%d", columnToLetter(i+1), rowNum)
			f.SetCellValue(summarySheet, cell, value)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("exported %d outreach activities across %d campaigns", len(activities), len(summaries)),
		Filename: filename,
	}, nil
}

// columnToLetter converts a 1-based column index to its Excel letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
