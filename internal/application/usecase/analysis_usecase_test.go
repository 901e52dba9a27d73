package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaseworks/lease-economics-go/internal/domain/entity"
	"github.com/leaseworks/lease-economics-go/internal/shared/types"
)

// --- Stubs ---

type stubConsole struct {
	warnings  []string
	errors    []string
	successes []string
}

func (c *stubConsole) Print(a ...interface{}) {}

func (c *stubConsole) Printf(format string, a ...interface{}) {}

func (c *stubConsole) Println(a ...interface{}) {}

func (c *stubConsole) LogInfo(format string, a ...interface{}) {}
func (c *stubConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *stubConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *stubConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, fmt.Sprintf(format, a...))
}
func (c *stubConsole) Status(message string) types.StatusHandle { return stubStatus{} }

func (c *stubConsole) ProgressWithTotal(total int) types.ProgressHandle { return stubProgress{} }

func (c *stubConsole) CreateTable() types.TableInterface { return &stubTable{} }

func (c *stubConsole) DisplayRentBars(monthly []types.MonthlyAmount) {}

type stubStatus struct{}

func (stubStatus) Update(message string) {}
func (stubStatus) Stop()                 {}

type stubProgress struct{}

func (stubProgress) Increment() {}
func (stubProgress) Stop()      {}

type stubTable struct{}

func (t *stubTable) AddColumn(name string, options ...interface{}) {}
func (t *stubTable) AddRow(cells ...interface{})                   {}
func (t *stubTable) Render() string                                { return "" }

type stubConfigRepo struct {
	inputs map[string]*entity.LeaseInput
	err    error
}

func (r *stubConfigRepo) LoadScenarioFile(filePath string) (*entity.LeaseInput, error) {
	if r.err != nil {
		return nil, r.err
	}
	input, ok := r.inputs[filePath]
	if !ok {
		return nil, fmt.Errorf("no such scenario %s", filePath)
	}
	return input, nil
}

type stubExportRepo struct {
	scheduleCalls int
	rollupCalls   int
	jsonCalls     int
	pdfCalls      int
}

func (r *stubExportRepo) ExportScheduleToCSV(model *entity.LeaseModel, filename, outputDir string) (string, error) {
	r.scheduleCalls++
	return filename + ".csv", nil
}

func (r *stubExportRepo) ExportRollupToCSV(model *entity.LeaseModel, segments []entity.Segment, filename, outputDir string) (string, error) {
	r.rollupCalls++
	return filename + ".csv", nil
}

func (r *stubExportRepo) ExportModelToJSON(models []*entity.LeaseModel, filename, outputDir string) (string, error) {
	r.jsonCalls++
	return filename + ".json", nil
}

func (r *stubExportRepo) ExportSummaryToPDF(models []*entity.LeaseModel, filename, outputDir string) (string, error) {
	r.pdfCalls++
	return filename + ".pdf", nil
}

func scenarioInput(name string) *entity.LeaseInput {
	return &entity.LeaseInput{
		Name:              name,
		AreaSF:            1200,
		Commencement:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		TermMonths:        24,
		BaseRentAnnualPSF: 24,
		Regime:            entity.RegimeNet,
		DiscountRate:      0.06,
	}
}

// --- Tests ---

func TestRunAnalysisRequiresScenarioFiles(t *testing.T) {
	uc := NewAnalysisUseCase(&stubConfigRepo{}, &stubExportRepo{}, &stubConsole{})
	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{})
	assert.True(t, errors.Is(err, types.ErrNoScenarioFiles))
}

func TestRunAnalysisExportsCSVPerScenario(t *testing.T) {
	configRepo := &stubConfigRepo{inputs: map[string]*entity.LeaseInput{
		"a.yaml": scenarioInput("Tower A"),
		"b.yaml": scenarioInput("Tower B"),
	}}
	exportRepo := &stubExportRepo{}
	console := &stubConsole{}
	uc := NewAnalysisUseCase(configRepo, exportRepo, console)

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{
		ScenarioFiles: []string{"a.yaml", "b.yaml"},
		ReportName:    "deal",
		ReportType:    []string{"csv", "json"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, exportRepo.scheduleCalls)
	assert.Equal(t, 2, exportRepo.rollupCalls)
	assert.Equal(t, 1, exportRepo.jsonCalls)
	assert.Equal(t, 0, exportRepo.pdfCalls)
	assert.Len(t, console.successes, 5)
}

func TestRunAnalysisSkipsExportWithoutReportName(t *testing.T) {
	configRepo := &stubConfigRepo{inputs: map[string]*entity.LeaseInput{
		"a.yaml": scenarioInput("Tower A"),
	}}
	exportRepo := &stubExportRepo{}
	uc := NewAnalysisUseCase(configRepo, exportRepo, &stubConsole{})

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{ScenarioFiles: []string{"a.yaml"}})
	require.NoError(t, err)
	assert.Equal(t, 0, exportRepo.scheduleCalls)
	assert.Equal(t, 0, exportRepo.jsonCalls)
}

func TestRunAnalysisPropagatesLoadErrors(t *testing.T) {
	loadErr := errors.New("parse failure")
	uc := NewAnalysisUseCase(&stubConfigRepo{err: loadErr}, &stubExportRepo{}, &stubConsole{})

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{ScenarioFiles: []string{"a.yaml"}})
	assert.True(t, errors.Is(err, loadErr))
}

func TestRunAnalysisPropagatesEngineErrors(t *testing.T) {
	invalid := scenarioInput("Broken")
	invalid.AreaSF = 0
	configRepo := &stubConfigRepo{inputs: map[string]*entity.LeaseInput{"a.yaml": invalid}}
	uc := NewAnalysisUseCase(configRepo, &stubExportRepo{}, &stubConsole{})

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{ScenarioFiles: []string{"a.yaml"}})
	assert.True(t, errors.Is(err, types.ErrInvalidArea))
	assert.Contains(t, err.Error(), "Broken")
}

func TestRunAnalysisSurfacesEngineWarnings(t *testing.T) {
	odd := scenarioInput("Odd")
	odd.Regime = "industrial"
	odd.Categories = []entity.ExpenseCategory{{Name: "Taxes", AnnualRatePSF: 4.5}}
	configRepo := &stubConfigRepo{inputs: map[string]*entity.LeaseInput{"a.yaml": odd}}
	console := &stubConsole{}
	uc := NewAnalysisUseCase(configRepo, &stubExportRepo{}, console)

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{ScenarioFiles: []string{"a.yaml"}})
	require.NoError(t, err)
	require.NotEmpty(t, console.warnings)
	assert.Contains(t, console.warnings[0], "unknown service regime")
}

func TestRunAnalysisWarnsOnUnknownReportType(t *testing.T) {
	configRepo := &stubConfigRepo{inputs: map[string]*entity.LeaseInput{"a.yaml": scenarioInput("A")}}
	console := &stubConsole{}
	uc := NewAnalysisUseCase(configRepo, &stubExportRepo{}, console)

	err := uc.RunAnalysis(context.Background(), &types.CLIArgs{
		ScenarioFiles: []string{"a.yaml"},
		ReportName:    "deal",
		ReportType:    []string{"xlsx"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, console.warnings)
	assert.Contains(t, console.warnings[len(console.warnings)-1], "xlsx")
}

func TestResolvePerspective(t *testing.T) {
	console := &stubConsole{}
	assert.Equal(t, entity.PerspectiveTenant, resolvePerspective("", console))
	assert.Equal(t, entity.PerspectiveTenant, resolvePerspective("tenant", console))
	assert.Equal(t, entity.PerspectiveLandlord, resolvePerspective("landlord", console))
	assert.Empty(t, console.warnings)

	assert.Equal(t, entity.PerspectiveTenant, resolvePerspective("broker", console))
	assert.Len(t, console.warnings, 1)
}
