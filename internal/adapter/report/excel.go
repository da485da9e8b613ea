// Package report renders a run's output as an XLSX workbook for manual
// review by the data team.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/greenmaru/spot-catalog-etl/internal/domain"
	"github.com/greenmaru/spot-catalog-etl/internal/output"
)

var categoryLabels = map[domain.Category]string{
	domain.CategoryNature:  "자연",
	domain.CategoryWater:   "수변",
	domain.CategorySports:  "체육",
	domain.CategoryCulture: "문화",
	domain.CategoryEcology: "생태",
}

// WriteReport renders the views into a workbook at path: a summary sheet,
// the full ranked list, and the high-score shortlist.
func WriteReport(path string, views output.Views) error {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "요약"
	fullSheet := "전체"
	topSheet := "추천"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(fullSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if _, err := f.NewSheet(topSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", "경기도 여행지 카탈로그")
	_ = f.SetCellValue(summarySheet, "A3", "생성 시각")
	_ = f.SetCellValue(summarySheet, "B3", views.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A4", "전체 여행지")
	_ = f.SetCellValue(summarySheet, "B4", len(views.Full))
	_ = f.SetCellValue(summarySheet, "A5", "추천 여행지")
	_ = f.SetCellValue(summarySheet, "B5", len(views.Top))

	row := 7
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "분류별")
	for _, cat := range domain.Categories {
		row++
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), categoryLabels[cat])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), views.CategoryCounts[cat])
	}

	writeSpotSheet(f, fullSheet, views.Full)
	writeSpotSheet(f, topSheet, views.Top)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeSpotSheet(f *excelize.File, sheet string, spots []*domain.Spot) {
	headers := []string{"이름", "분류", "시군", "위도", "경도", "면적(m²)", "총점", "출처"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for r, sp := range spots {
		values := []any{
			sp.Name,
			categoryLabels[sp.Category],
			sp.District,
			sp.Location.Lat,
			sp.Location.Lng,
			sp.AreaSqm,
			sp.Scores.Total,
			string(sp.Source),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
}
