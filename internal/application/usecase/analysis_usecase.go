package usecase

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/leaseworks/lease-economics-go/internal/domain/calc"
	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/domain/repository"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
)

// AnalysisUseCase handles the main lease analysis functionality.
type AnalysisUseCase struct {
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewAnalysisUseCase creates a new analysis use case.
func NewAnalysisUseCase(
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		configRepo: configRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// RunAnalysis executa a funcionalidade principal: carrega cenários, calcula
// os modelos e exibe/exporta os resultados.
func (uc *AnalysisUseCase) RunAnalysis(ctx context.Context, args *types.CLIArgs) error {
	if len(args.ScenarioFiles) == 0 {
		return types.ErrNoScenarioFiles
	}

	perspective := resolvePerspective(args.Perspective, uc.console)

	status := uc.console.Status("Loading lease scenarios...")

	models := []*entity.LeaseModel{}

	progress := uc.console.ProgressWithTotal(len(args.ScenarioFiles) * 2)
	for _, file := range args.ScenarioFiles {
		status.Update(fmt.Sprintf("Loading scenario %s...", file))
		input, err := uc.configRepo.LoadScenarioFile(file)
		if err != nil {
			progress.Stop()
			status.Stop()
			return err
		}
		progress.Increment()

		status.Update(fmt.Sprintf("Calculating %s...", input.Name))
		model, err := calc.BuildModel(input)
		if err != nil {
			progress.Stop()
			status.Stop()
			return fmt.Errorf("scenario %s: %w", input.Name, err)
		}
		progress.Increment()

		models = append(models, model)
	}
	progress.Stop()
	status.Stop()

	for _, model := range models {
		// Avisos de degradação do engine (modos desconhecidos etc.)
		for _, warning := range model.Warnings {
			uc.console.LogWarning("%s: %s", model.Name, warning)
		}

		uc.displayKPIPanel(model)

		if args.Yearly || !args.LeaseYear {
			segments := calc.BuildSegments(model, perspective, entity.BasisCalendarYear)
			uc.displayRollupTable(model, segments, "Calendar Year Schedule")
		}
		if args.LeaseYear {
			segments := calc.BuildSegments(model, perspective, entity.BasisLeaseYear)
			uc.displayRollupTable(model, segments, "Lease Year Schedule")
		}
		if args.Monthly {
			uc.displayMonthlyTable(model)
		}
		if args.RentBars {
			uc.displayRentBars(model)
		}
	}

	if len(models) > 1 {
		uc.displayComparisonTable(models)
	}

	return uc.exportReports(models, perspective, args)
}

// exportReports grava os relatórios solicitados via ExportRepository.
func (uc *AnalysisUseCase) exportReports(models []*entity.LeaseModel, perspective entity.RollupPerspective, args *types.CLIArgs) error {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return nil
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			for _, model := range models {
				name := args.ReportName
				if len(models) > 1 {
					name = fmt.Sprintf("%s_%s", args.ReportName, model.Name)
				}
				csvPath, err := uc.exportRepo.ExportScheduleToCSV(model, name+"_schedule", args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export schedule to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported schedule to CSV: %s", csvPath)
				}

				segments := calc.BuildSegments(model, perspective, entity.BasisCalendarYear)
				rollupPath, err := uc.exportRepo.ExportRollupToCSV(model, segments, name+"_annual", args.Dir)
				if err != nil {
					uc.console.LogError("Failed to export annual rollup to CSV: %s", err)
				} else {
					uc.console.LogSuccess("Successfully exported annual rollup to CSV: %s", rollupPath)
				}
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportModelToJSON(models, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportSummaryToPDF(models, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type %q (expected csv, json or pdf)", reportType)
		}
	}

	return nil
}

// Funções auxiliares para o AnalysisUseCase

// displayKPIPanel exibe o painel de métricas de um cenário.
func (uc *AnalysisUseCase) displayKPIPanel(model *entity.LeaseModel) {
	k := model.KPIs

	header := pterm.FgLightCyan.Sprintf("%s", scenarioTitle(model))
	uc.console.Printf("\n%s\n", header)

	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("PV")
	table.AddColumn("Nominal")

	table.AddRow("Net effective rent ($/SF/yr)",
		fmt.Sprintf("$%.2f", calc.Round2(k.PVNetEffectiveRentPSF)),
		fmt.Sprintf("$%.2f", calc.Round2(k.NominalNetEffectiveRentPSF)))
	table.AddRow("Net rent",
		fmt.Sprintf("$%.2f", calc.Round2(k.PVNetRent)),
		fmt.Sprintf("$%.2f", calc.Round2(k.TotalNet)))
	table.AddRow("Gross rent",
		fmt.Sprintf("$%.2f", calc.Round2(k.PVGrossRent)),
		fmt.Sprintf("$%.2f", calc.Round2(k.TotalGross)))
	table.AddRow("Forgone (abated) rent",
		fmt.Sprintf("$%.2f", calc.Round2(k.ForgoneRentPV)),
		fmt.Sprintf("$%.2f", calc.Round2(k.ForgoneRentNominal)))
	table.AddRow("TI allowance (offered / applied)",
		fmt.Sprintf("$%.2f / $%.2f", calc.Round2(k.TIOfferedPV), calc.Round2(k.TIAppliedPV)), "")
	table.AddRow("Commission", fmt.Sprintf("$%.2f", calc.Round2(k.CommissionPV)), "")
	table.AddRow("Landlord outlay (TI + commission)", fmt.Sprintf("$%.2f", calc.Round2(k.LandlordCostPV)), "")
	table.AddRow("Total incentive value", fmt.Sprintf("$%.2f", calc.Round2(k.TotalIncentivePV)), "")

	uc.console.Print(table.Render())

	recovery := "n/a"
	if k.RecoveryRatioDefined {
		recovery = fmt.Sprintf("%.1f%%", k.RecoveryRatio*100)
	}
	uc.console.Printf("%s\n", pterm.FgGray.Sprintf(
		"Avg monthly net $%.2f | avg monthly gross $%.2f | spread $%.2f | occupancy $%.4f/SF/mo | recovery %s | abated %.1f%% of term",
		calc.Round2(k.AvgMonthlyNet), calc.Round2(k.AvgMonthlyGross), calc.Round2(k.GrossNetSpread),
		calc.Round4(k.OccupancyCostPSFMonthly), recovery, k.PctTermAbated*100))
}

// displayRollupTable exibe os segmentos anuais (ou por ano de locação).
func (uc *AnalysisUseCase) displayRollupTable(model *entity.LeaseModel, segments []entity.Segment, title string) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("%s - %s", scenarioTitle(model), title))

	table := uc.console.CreateTable()
	table.AddColumn("Year")
	table.AddColumn("Periods")
	table.AddColumn("Abated")
	table.AddColumn("Base $/SF/yr")
	table.AddColumn("Net $/SF/mo")
	table.AddColumn("OpEx $/SF/mo")
	table.AddColumn("Net Total")
	table.AddColumn("OpEx Total")
	table.AddColumn("Gross Total")

	for _, seg := range segments {
		abated := ""
		if seg.Abated {
			abated = pterm.FgYellow.Sprint("yes")
		}
		table.AddRow(
			seg.Label,
			seg.PeriodRange,
			abated,
			fmt.Sprintf("%.2f", calc.Round2(seg.AvgBaseAnnualPSF)),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgNetMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(seg.AvgOpExMonthlyPSF)),
			fmt.Sprintf("$%.2f", calc.Round2(seg.NetTotal)),
			fmt.Sprintf("$%.2f", calc.Round2(seg.OpExTotal)),
			fmt.Sprintf("$%.2f", calc.Round2(seg.GrossTotal)),
		)
	}

	uc.console.Print(table.Render())
}

// displayMonthlyTable exibe o cronograma mensal completo.
func (uc *AnalysisUseCase) displayMonthlyTable(model *entity.LeaseModel) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("%s - Monthly Schedule", scenarioTitle(model)))

	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Month")
	table.AddColumn("Base $/SF/yr")
	table.AddColumn("Net $/SF/mo")
	table.AddColumn("Gross $/SF/mo")
	table.AddColumn("Net Rent")
	table.AddColumn("Tenant OpEx")
	table.AddColumn("Gross Rent")

	netAmounts := make([]float64, 0, len(model.Schedule))
	opExAmounts := make([]float64, 0, len(model.Schedule))
	grossAmounts := make([]float64, 0, len(model.Schedule))
	for _, row := range model.Schedule {
		label := row.MonthLabel
		if row.Abated {
			label = pterm.FgYellow.Sprintf("%s *", row.MonthLabel)
		}
		if !row.InTerm {
			label = pterm.FgGray.Sprintf("%s (ext)", row.MonthLabel)
		}
		table.AddRow(
			row.Period,
			label,
			fmt.Sprintf("%.2f", calc.Round2(row.BaseAnnualPSF)),
			fmt.Sprintf("%.4f", calc.Round4(row.NetMonthlyPSF)),
			fmt.Sprintf("%.4f", calc.Round4(row.GrossMonthlyPSF)),
			fmt.Sprintf("$%.2f", calc.Round2(row.NetAmount)),
			fmt.Sprintf("$%.2f", calc.Round2(row.TenantOpExAmount)),
			fmt.Sprintf("$%.2f", calc.Round2(row.GrossAmount)),
		)
		netAmounts = append(netAmounts, row.NetAmount)
		opExAmounts = append(opExAmounts, row.TenantOpExAmount)
		grossAmounts = append(grossAmounts, row.GrossAmount)
	}

	// Totais pelo caminho round-then-sum, para bater com as linhas exibidas.
	table.AddRow(
		"", pterm.Bold.Sprint("Total"), "", "", "",
		fmt.Sprintf("$%.2f", calc.SumRounded2(netAmounts)),
		fmt.Sprintf("$%.2f", calc.SumRounded2(opExAmounts)),
		fmt.Sprintf("$%.2f", calc.SumRounded2(grossAmounts)),
	)

	uc.console.Print(table.Render())
}

// displayRentBars exibe o fluxo de caixa mensal como barras.
func (uc *AnalysisUseCase) displayRentBars(model *entity.LeaseModel) {
	monthly := make([]types.MonthlyAmount, len(model.Schedule))
	for i, row := range model.Schedule {
		monthly[i] = types.MonthlyAmount{
			Label:  row.MonthLabel,
			Amount: calc.Round2(row.GrossAmount),
		}
	}
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("%s", scenarioTitle(model)))
	uc.console.DisplayRentBars(monthly)
}

// displayComparisonTable exibe os KPIs de todos os cenários lado a lado.
func (uc *AnalysisUseCase) displayComparisonTable(models []*entity.LeaseModel) {
	uc.console.Printf("\n%s\n", pterm.FgLightCyan.Sprint("Scenario Comparison"))

	table := uc.console.CreateTable()
	table.AddColumn("Scenario")
	table.AddColumn("NER PV ($/SF/yr)")
	table.AddColumn("NER Nominal ($/SF/yr)")
	table.AddColumn("Total Net")
	table.AddColumn("Total Gross")
	table.AddColumn("Incentives PV")
	table.AddColumn("Landlord Outlay PV")

	for _, model := range models {
		k := model.KPIs
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", scenarioTitle(model)),
			fmt.Sprintf("$%.2f", calc.Round2(k.PVNetEffectiveRentPSF)),
			fmt.Sprintf("$%.2f", calc.Round2(k.NominalNetEffectiveRentPSF)),
			fmt.Sprintf("$%.2f", calc.Round2(k.TotalNet)),
			fmt.Sprintf("$%.2f", calc.Round2(k.TotalGross)),
			fmt.Sprintf("$%.2f", calc.Round2(k.TotalIncentivePV)),
			fmt.Sprintf("$%.2f", calc.Round2(k.LandlordCostPV)),
		)
	}

	uc.console.Print(table.Render())
}

func scenarioTitle(model *entity.LeaseModel) string {
	if model.Name != "" {
		return model.Name
	}
	return "Lease Scenario"
}

func resolvePerspective(value string, console types.ConsoleInterface) entity.RollupPerspective {
	switch value {
	case "", string(entity.PerspectiveTenant):
		return entity.PerspectiveTenant
	case string(entity.PerspectiveLandlord):
		return entity.PerspectiveLandlord
	default:
		console.LogWarning("Unknown perspective %q, using tenant", value)
		return entity.PerspectiveTenant
	}
}
