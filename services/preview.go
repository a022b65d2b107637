package services

import (
	"context"

	"github.com/yeremiapane/payroll-app/models"
)

type ContractorPay struct {
	ContractorID        string  `json:"contractor_id"`
	Name                string  `json:"name"`
	ProjectName         string  `json:"project_name"`
	WeeklyPayment       float64 `json:"weekly_payment"`
	Budget              float64 `json:"budget"`
	TotalPaid           float64 `json:"total_paid"`
	RemainingBalance    float64 `json:"remaining_balance"`
	AfterPaymentBalance float64 `json:"after_payment_balance"`
}

// WeeklyPreview is what the week would pay, without touching the ledger.
type WeeklyPreview struct {
	WeekStartDate    string          `json:"week_start_date"`
	WeekEndDate      string          `json:"week_end_date"`
	Employees        []EmployeePay   `json:"employees"`
	Contractors      []ContractorPay `json:"contractors"`
	EmployeeTotals   PayTotals       `json:"employee_totals"`
	ContractorsTotal float64         `json:"contractors_total"`
	GrandTotal       float64         `json:"grand_total"`
}

func contractorPay(c models.Contractor) ContractorPay {
	c.Normalize()
	return ContractorPay{
		ContractorID:        c.ID,
		Name:                c.Name,
		ProjectName:         c.ProjectName,
		WeeklyPayment:       c.WeeklyPayment,
		Budget:              c.Budget,
		TotalPaid:           c.TotalPaid,
		RemainingBalance:    c.RemainingBalance,
		AfterPaymentBalance: SubtractSigned(c.RemainingBalance, c.WeeklyPayment),
	}
}

// SubtractSigned is a - b without flooring.
func SubtractSigned(a, b float64) float64 {
	return sum(a, -b)
}

func (s *PayrollService) Preview(ctx context.Context, weekStart string, weekEnd string) (*WeeklyPreview, error) {
	in, err := s.loadWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	contractors, err := s.activeContractors(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := &WeeklyPreview{
		WeekStartDate: weekStart,
		WeekEndDate:   weekEnd,
		Employees:     in.pays(),
		Contractors:   make([]ContractorPay, 0, len(contractors)),
	}
	for i, p := range out.Employees {
		out.Employees[i].ProjectName = projectLabel(p.ProjectID, projects)
		out.EmployeeTotals.Add(p)
	}
	for _, c := range contractors {
		cp := contractorPay(c)
		out.Contractors = append(out.Contractors, cp)
		out.ContractorsTotal = sum(out.ContractorsTotal, cp.WeeklyPayment)
	}
	out.GrandTotal = sum(out.EmployeeTotals.NetPayment, out.ContractorsTotal)
	return out, nil
}
