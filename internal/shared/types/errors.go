package types

import "errors"

var (
	ErrInvalidArea     = errors.New("lease area must be positive to build a schedule")
	ErrInvalidTerm     = errors.New("lease term must be a positive number of months")
	ErrNoScenarioFiles = errors.New("no scenario files provided. Pass at least one with --scenario")
)
