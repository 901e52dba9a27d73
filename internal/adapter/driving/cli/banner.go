package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/leaseworks/lease-economics-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$                                                     /$$$$$$$$
        | $$                                                    | $$_____/
        | $$       /$$$$$$   /$$$$$$   /$$$$$$$ /$$$$$$         | $$        /$$$$$$$  /$$$$$$  /$$$$$$$
        | $$      /$$__  $$ |____  $$ /$$_____//$$__  $$        | $$$$$    /$$_____/ /$$__  $$| $$__  $$
        | $$     | $$$$$$$$  /$$$$$$$|  $$$$$$| $$$$$$$$        | $$__/   | $$      | $$  \ $$| $$  \ $$
        | $$     | $$_____/ /$$__  $$ \____  $| $$_____/        | $$      | $$      | $$  | $$| $$  | $$
        | $$$$$$$|  $$$$$$$|  $$$$$$$ /$$$$$$$|  $$$$$$$        | $$$$$$$$|  $$$$$$$|  $$$$$$/| $$  | $$
        |________/\_______/ \_______/|_______/ \_______/        |________/ \_______/ \______/ |__/  |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Lease Economics Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	// Usa a função do pacote version para verificar por atualizações
	version.CheckLatestVersion(currentVersion)
}
