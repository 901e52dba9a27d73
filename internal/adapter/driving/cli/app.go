package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leaseworks/lease-economics-go/internal/application/usecase"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
	"github.com/leaseworks/lease-economics-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd         *cobra.Command
	analysisUseCase *usecase.AnalysisUseCase
	version         string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "lease-econ",
		Short:   "Lease Economics Dashboard CLI",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Lease Economics Dashboard version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringSliceP("scenario", "s", nil, "Lease scenario files (TOML, YAML, or JSON; repeat or comma-separate to compare)")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().StringP("perspective", "p", "tenant", "Rollup perspective: tenant or landlord")
	rootCmd.PersistentFlags().Bool("monthly", false, "Display the full monthly schedule table")
	rootCmd.PersistentFlags().Bool("yearly", false, "Display the calendar-year rollup (default when no view flag is set)")
	rootCmd.PersistentFlags().Bool("lease-year", false, "Display the lease-year rollup with abatement segments")
	rootCmd.PersistentFlags().Bool("rent-bars", false, "Display the monthly gross rent cash flow as bars")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	scenarios, _ := app.rootCmd.Flags().GetStringSlice("scenario")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	perspective, _ := app.rootCmd.Flags().GetString("perspective")
	monthly, _ := app.rootCmd.Flags().GetBool("monthly")
	yearly, _ := app.rootCmd.Flags().GetBool("yearly")
	leaseYear, _ := app.rootCmd.Flags().GetBool("lease-year")
	rentBars, _ := app.rootCmd.Flags().GetBool("rent-bars")

	// Set default directory to current working directory if not specified
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ScenarioFiles: scenarios,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		Perspective:   perspective,
		Monthly:       monthly,
		Yearly:        yearly,
		LeaseYear:     leaseYear,
		RentBars:      rentBars,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Executa a análise
	ctx := context.Background()
	return app.analysisUseCase.RunAnalysis(ctx, cliArgs)
}

// SetAnalysisUseCase sets the analysis use case for the CLI app.
func (app *CLIApp) SetAnalysisUseCase(useCase *usecase.AnalysisUseCase) {
	app.analysisUseCase = useCase
}
