package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/domain/repository"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadScenarioFile carrega um cenário de locação de um arquivo TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadScenarioFile(filePath string) (*entity.LeaseInput, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing scenario file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading scenario file: %w", err)
	}

	var cfg types.ScenarioConfig

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario file format: %s", fileExtension)
	}

	input, err := BuildLeaseInput(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filePath, err)
	}
	if input.Name == "" {
		base := filepath.Base(filePath)
		input.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return input, nil
}

// BuildLeaseInput converte a forma do arquivo para a configuração do engine.
// Enum strings pass through as-is; the engine validates them and degrades
// with warnings, so a partially-migrated scenario file still computes.
func BuildLeaseInput(cfg *types.ScenarioConfig) (*entity.LeaseInput, error) {
	commencement, err := parseDate(cfg.Commencement)
	if err != nil {
		return nil, err
	}

	categories := make([]entity.ExpenseCategory, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		categories = append(categories, entity.ExpenseCategory{
			Name:              c.Name,
			AnnualRatePSF:     c.AnnualRatePSF,
			Escalation:        buildEscalation(c.Escalation),
			Payer:             entity.PayerMode(c.Payer),
			BaseYearAnnualPSF: c.BaseYearAnnualPSF,
		})
	}

	capex := make([]entity.CapExItem, 0, len(cfg.CapExItems))
	for _, item := range cfg.CapExItems {
		capex = append(capex, entity.CapExItem{
			Label:  item.Label,
			Amount: item.Amount,
			Unit:   entity.AmountUnit(item.Unit),
		})
	}

	return &entity.LeaseInput{
		Name:         cfg.Name,
		AreaSF:       cfg.AreaSF,
		Commencement: commencement,
		TermMonths:   cfg.TermMonths,

		BaseRentAnnualPSF:  cfg.BaseRentAnnualPSF,
		BaseRentEscalation: buildEscalation(cfg.BaseRentEscalation),

		Regime:     entity.ServiceRegime(cfg.Regime),
		Categories: categories,

		Abatement: entity.AbatementConfig{
			FreeMonths:      cfg.Abatement.FreeMonths,
			Placement:       entity.AbatementPlacement(cfg.Abatement.Placement),
			Timing:          entity.AbatementTiming(cfg.Abatement.Timing),
			Scope:           entity.AbatementScope(cfg.Abatement.Scope),
			ExplicitPeriods: cfg.Abatement.ExplicitPeriods,
		},
		ManagementFee: entity.ManagementFee{
			Rate:  cfg.ManagementFee.Rate,
			Basis: entity.RentBasis(cfg.ManagementFee.Basis),
			Payer: entity.PayerMode(cfg.ManagementFee.Payer),
		},

		CapExItems: capex,
		Allowance: entity.AllowanceTerms{
			Amount:        cfg.Allowance.Amount,
			Unit:          entity.AmountUnit(cfg.Allowance.Unit),
			Treatment:     entity.FundingTreatment(cfg.Allowance.Treatment),
			FinancingRate: cfg.Allowance.FinancingRate,
		},
		Commission: entity.CommissionTerms{
			Rate:  cfg.Commission.Rate,
			Basis: entity.RentBasis(cfg.Commission.Basis),
		},

		DiscountRate: cfg.DiscountRate,
	}, nil
}

func buildEscalation(cfg types.EscalationConfig) entity.EscalationRule {
	return entity.EscalationRule{
		Mode:      entity.EscalationMode(cfg.Mode),
		Percent:   cfg.Percent,
		Increment: cfg.Increment,
		Schedule:  cfg.Schedule,
	}
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("commencement date is required")
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("commencement date %q is not in YYYY-MM-DD format", value)
}
