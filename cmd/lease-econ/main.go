package main

import (
	"fmt"
	"os"

	"github.com/leaseworks/lease-economics-go/internal/adapter/driven/config"
	"github.com/leaseworks/lease-economics-go/internal/adapter/driven/export"
	"github.com/leaseworks/lease-economics-go/internal/adapter/driving/cli"
	"github.com/leaseworks/lease-economics-go/internal/application/usecase"
	"github.com/leaseworks/lease-economics-go/pkg/console"
	"github.com/leaseworks/lease-economics-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	analysisUseCase := usecase.NewAnalysisUseCase(
		configRepo,
		exportRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetAnalysisUseCase(analysisUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
