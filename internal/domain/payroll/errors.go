package payroll

import "errors"

var (
	ErrInvalidPeriod     = errors.New("invalid payroll period")
	ErrNoSalaryStructure = errors.New("employee has no salary structure")
)
