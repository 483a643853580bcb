package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePayslipPDF renders an employee's slip for the period and writes it
// under the configured payslip directory, returning the file path.
func (s *Service) GeneratePayslipPDF(ctx context.Context, employeeID string, period Period) (string, error) {
	slip, err := s.SalarySlip(ctx, employeeID, period)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.PayslipDir, 0o755); err != nil {
		return "", err
	}
	fileName := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", slip.EmployeeID, slip.Year, slip.Month)
	filePath := filepath.Join(s.PayslipDir, fileName)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Slip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(slip.Month).String(), slip.Year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Working days: %.1f of %d", slip.WorkingDays, slip.TotalDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Present: %d  Half-days: %d  Leave: %d  Absent: %d",
		slip.PresentDays, slip.HalfDays, slip.LeaveDays, slip.AbsentDays))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross salary: %.2f", slip.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Earned salary: %.2f", slip.EarnedSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", slip.Deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net earned: %.2f", slip.NetEarned))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
