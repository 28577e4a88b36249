package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/xuri/excelize/v2"

	"github.com/renopilot/backend/internal/calc"
)

// ReportServiceImpl renders project estimates via the estimate service.
type ReportServiceImpl struct {
	estimates EstimateService
}

// NewReportService creates a ReportServiceImpl.
func NewReportService(estimates EstimateService) ReportService {
	return &ReportServiceImpl{estimates: estimates}
}

// ProjectPDF runs the project estimate and lays it out as a one-page quote.
func (s *ReportServiceImpl) ProjectPDF(ctx context.Context, req ProjectEstimateRequest) ([]byte, error) {
	estimate, err := s.estimates.ProjectEstimate(ctx, req)
	if err != nil {
		return nil, err
	}

	m := maroto.New(config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		Build())

	m.AddRow(12,
		text.NewCol(8, "Painting Cost Estimate", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
		}),
		text.NewCol(4, time.Now().Format("2 January 2006"), props.Text{
			Size:  10,
			Align: align.Right,
			Top:   2,
		}),
	)

	rateLabel := estimate.LaborRate.Name
	if estimate.LaborRate.Region != "" {
		rateLabel = fmt.Sprintf("%s (%s)", estimate.LaborRate.Name, estimate.LaborRate.Region)
	}
	m.AddRow(8, text.NewCol(12, "Labor rate: "+rateLabel, props.Text{Size: 9}))
	m.AddRow(4, line.NewCol(12))

	m.AddRow(8,
		pdfHeaderCol(4, "Surface"),
		pdfHeaderCol(2, "Area"),
		pdfHeaderCol(2, "Material"),
		pdfHeaderCol(2, "Labor"),
		pdfHeaderCol(2, "Total"),
	)
	for _, surface := range estimate.Summary.Surfaces {
		m.AddRow(7,
			pdfCell(4, surface.Name),
			pdfCell(2, calc.FormatArea(surface.Area)),
			pdfCell(2, calc.FormatCurrency(surface.CostBreakdown.MaterialCost)),
			pdfCell(2, calc.FormatCurrency(surface.CostBreakdown.LaborCost)),
			pdfCell(2, calc.FormatCurrency(surface.CostBreakdown.TotalCost)),
		)
	}

	m.AddRow(4, line.NewCol(12))
	totals := estimate.Summary.Totals
	m.AddRows(
		pdfTotalRow("Total area", calc.FormatArea(totals.TotalArea)),
		pdfTotalRow("Materials", calc.FormatCurrency(totals.TotalMaterialCost)),
		pdfTotalRow("Labor", calc.FormatCurrency(totals.TotalLaborCost)),
		pdfTotalRow("Subtotal", calc.FormatCurrency(totals.TotalSubtotal)),
		pdfTotalRow("Profit margin", calc.FormatCurrency(totals.TotalProfitMargin)),
	)
	m.AddRow(9,
		text.NewCol(8, "Grand total", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(4, calc.FormatCurrency(totals.GrandTotal), props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func pdfHeaderCol(size int, label string) core.Col {
	return text.NewCol(size, label, props.Text{Size: 9, Style: fontstyle.Bold})
}

func pdfCell(size int, value string) core.Col {
	return text.NewCol(size, value, props.Text{Size: 9})
}

func pdfTotalRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
	)
}

// ProjectXLSX runs the project estimate and writes one sheet per project,
// surfaces as rows and totals underneath.
func (s *ReportServiceImpl) ProjectXLSX(ctx context.Context, req ProjectEstimateRequest) ([]byte, error) {
	estimate, err := s.estimates.ProjectEstimate(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Estimate"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"Surface", "Area (m²)", "Coats", "Paint Volume (L)", "Prep Time (min)",
		"Material Cost", "Labor Cost", "Subtotal", "Profit Margin", "Total",
	}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	// Summary surfaces keep request order, so coats line up by index.
	rowIdx := 2
	for i, surface := range estimate.Summary.Surfaces {
		breakdown := surface.CostBreakdown
		values := []interface{}{
			surface.Name,
			surface.Area,
			req.Surfaces[i].Coats,
			breakdown.Details.PaintVolume,
			breakdown.Details.PrepTime,
			breakdown.MaterialCost,
			breakdown.LaborCost,
			breakdown.Subtotal,
			breakdown.ProfitMargin,
			breakdown.TotalCost,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			f.SetCellValue(sheet, cell, value)
		}
		rowIdx++
	}

	totals := estimate.Summary.Totals
	rowIdx++
	totalLines := [][2]interface{}{
		{"Total area (m²)", totals.TotalArea},
		{"Total material cost", totals.TotalMaterialCost},
		{"Total labor cost", totals.TotalLaborCost},
		{"Subtotal", totals.TotalSubtotal},
		{"Profit margin", totals.TotalProfitMargin},
		{"Grand total", totals.GrandTotal},
	}
	for _, pair := range totalLines {
		labelCell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		valueCell, _ := excelize.CoordinatesToCellName(2, rowIdx)
		f.SetCellValue(sheet, labelCell, pair[0])
		f.SetCellValue(sheet, valueCell, pair[1])
		rowIdx++
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	headerEnd, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", headerEnd, style)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
