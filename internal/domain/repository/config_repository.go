package repository

import (
	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

// ConfigRepository defines the interface for loading lease scenario files.
type ConfigRepository interface {
	LoadScenarioFile(filePath string) (*entity.LeaseInput, error)
}
