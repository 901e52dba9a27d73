package repository

import (
	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportScheduleToCSV(model *entity.LeaseModel, filename, outputDir string) (string, error)
	ExportModelToJSON(models []*entity.LeaseModel, filename, outputDir string) (string, error)
	ExportSummaryToPDF(models []*entity.LeaseModel, filename, outputDir string) (string, error)

	// Rollup export
	ExportRollupToCSV(model *entity.LeaseModel, segments []entity.Segment, filename, outputDir string) (string, error)
}
