package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/leaseworks/lease-economics-go/internal/domain/calc"
	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Funções de Exportação do Cronograma Mensal ---

func (r *ExportRepositoryImpl) ExportScheduleToCSV(model *entity.LeaseModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Period", "Month", "In Term", "Abated", "Proration",
		"Base Rent ($/SF/yr)", "Net Rent ($/SF/mo)", "Tenant OpEx ($/SF/mo)", "Gross Rent ($/SF/mo)",
		"Net Rent ($)", "Tenant OpEx ($)", "Landlord OpEx ($)", "Gross Rent ($)", "Forgone Rent ($)",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range model.Schedule {
		record := []string{
			strconv.Itoa(row.Period),
			row.MonthLabel,
			strconv.FormatBool(row.InTerm),
			strconv.FormatBool(row.Abated),
			fmt.Sprintf("%.4f", row.Proration),
			// Taxas por área em precisão de auditoria; valores em centavos.
			fmt.Sprintf("%.4f", calc.Round4(row.BaseAnnualPSF)),
			fmt.Sprintf("%.4f", calc.Round4(row.NetMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(row.TenantOpExMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(row.GrossMonthlyPSF)),
			fmt.Sprintf("%.2f", calc.Round2(row.NetAmount)),
			fmt.Sprintf("%.2f", calc.Round2(row.TenantOpExAmount)),
			fmt.Sprintf("%.2f", calc.Round2(row.LandlordOpExAmount)),
			fmt.Sprintf("%.2f", calc.Round2(row.GrossAmount)),
			fmt.Sprintf("%.2f", calc.Round2(row.ForgoneAmount)),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRollupToCSV(model *entity.LeaseModel, segments []entity.Segment, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating rollup CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Year", "Periods", "Abated", "Months",
		"Avg Base Rent ($/SF/yr)", "Avg Net ($/SF/mo)", "Avg OpEx ($/SF/mo)", "Avg Gross ($/SF/mo)",
		"Net Total ($)", "OpEx Total ($)", "Gross Total ($)", "Forgone ($)",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing rollup CSV header: %w", err)
	}

	for _, seg := range segments {
		record := []string{
			seg.Label,
			seg.PeriodRange,
			strconv.FormatBool(seg.Abated),
			fmt.Sprintf("%.2f", seg.Months),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgBaseAnnualPSF)),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgNetMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgOpExMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgGrossMonthlyPSF)),
			fmt.Sprintf("%.2f", calc.Round2(seg.NetTotal)),
			fmt.Sprintf("%.2f", calc.Round2(seg.OpExTotal)),
			fmt.Sprintf("%.2f", calc.Round2(seg.GrossTotal)),
			fmt.Sprintf("%.2f", calc.Round2(seg.ForgoneTotal)),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing rollup CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportModelToJSON(models []*entity.LeaseModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(models); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportSummaryToPDF(models []*entity.LeaseModel, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, model := range models {
		pdf.AddPage()

		// Cabeçalho
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		name := model.Name
		if name == "" {
			name = "Lease Scenario"
		}
		if len(name) > 80 {
			name = name[:77] + "..."
		}
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", name)), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s SF | %d months | %d schedule periods",
			formatThousands(model.Meta.AreaSF), model.Meta.TermMonths, model.Meta.SchedulePeriods)), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		// Destaque do NER
		k := model.KPIs
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, "Net Effective Rent")
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 16)
		pdf.CellFormat(95, 12, tr(fmt.Sprintf("$%.2f /SF/yr (PV)", calc.Round2(k.PVNetEffectiveRentPSF))), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 12, tr(fmt.Sprintf("$%.2f /SF/yr (nominal)", calc.Round2(k.NominalNetEffectiveRentPSF))), "", 1, "L", false, 0, "")
		pdf.Ln(6)

		drawSection("Cash Flow Summary", fmt.Sprintf(
			"Total net rent: $%.2f\nTotal gross rent: $%.2f\nGross-net spread: $%.2f\nAverage monthly net: $%.2f\nAverage monthly gross: $%.2f\nOccupancy cost: $%.4f /SF/mo",
			calc.Round2(k.TotalNet), calc.Round2(k.TotalGross), calc.Round2(k.GrossNetSpread),
			calc.Round2(k.AvgMonthlyNet), calc.Round2(k.AvgMonthlyGross), calc.Round4(k.OccupancyCostPSFMonthly)))

		recovery := "n/a (no operating expenses)"
		if k.RecoveryRatioDefined {
			recovery = fmt.Sprintf("%.1f%%", k.RecoveryRatio*100)
		}
		drawSection("Concessions & Recoveries", fmt.Sprintf(
			"Abated: %.1f%% of term\nForgone rent: $%.2f nominal / $%.2f PV\nOpEx recovery ratio: %s\nTI budget: $%.2f (allowance applied $%.2f, tenant contribution $%.2f)\nTI present value: $%.2f offered / $%.2f applied\nCommission: $%.2f\nLandlord PV outlay: $%.2f\nTotal incentive value: $%.2f",
			k.PctTermAbated*100,
			calc.Round2(k.ForgoneRentNominal), calc.Round2(k.ForgoneRentPV),
			recovery,
			calc.Round2(k.TIBudget), calc.Round2(k.TIAllowanceApplied), calc.Round2(k.TenantTIContribution),
			calc.Round2(k.TIOfferedPV), calc.Round2(k.TIAppliedPV),
			calc.Round2(k.CommissionAmount),
			calc.Round2(k.LandlordCostPV),
			calc.Round2(k.TotalIncentivePV)))

		// Tabela anual (perspectiva do locatário, ano civil)
		segments := calc.BuildSegments(model, entity.PerspectiveTenant, entity.BasisCalendarYear)
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, "Annual Schedule")
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		widths := []float64{20, 24, 18, 32, 32, 32, 32}
		cols := []string{"Year", "Periods", "Abated", "Base $/SF/yr", "Net Total", "OpEx Total", "Gross Total"}
		for c, col := range cols {
			pdf.CellFormat(widths[c], 7, tr(col), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, seg := range segments {
			abatedText := ""
			if seg.Abated {
				abatedText = "yes"
			}
			cells := []string{
				seg.Label,
				seg.PeriodRange,
				abatedText,
				fmt.Sprintf("%.2f", calc.Round2(seg.AvgBaseAnnualPSF)),
				fmt.Sprintf("$%.2f", calc.Round2(seg.NetTotal)),
				fmt.Sprintf("$%.2f", calc.Round2(seg.OpExTotal)),
				fmt.Sprintf("$%.2f", calc.Round2(seg.GrossTotal)),
			}
			for c, cell := range cells {
				pdf.CellFormat(widths[c], 6, tr(cell), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}

		// Rodapé
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Lease Economics Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_1504")
	sanitized := sanitizeFilename(base)
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", sanitized, timestamp, ext)), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitizeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "_")
	if cleaned == "" {
		cleaned = "lease_report"
	}
	return cleaned
}

func formatThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	n := len(s)
	if n <= 3 {
		return s
	}
	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	return string(out)
}
