package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ScenarioFiles []string
	ReportName    string
	ReportType    []string
	Dir           string
	Perspective   string
	Monthly       bool
	Yearly        bool
	LeaseYear     bool
	RentBars      bool
}
