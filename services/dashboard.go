package services

import (
	"context"

	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/utils"
)

type DashboardStats struct {
	WeekStartDate              string  `json:"week_start_date"`
	TotalEmployees             int     `json:"total_employees"`
	ActiveEmployees            int     `json:"active_employees"`
	TotalContractors           int     `json:"total_contractors"`
	ActiveContractors          int     `json:"active_contractors"`
	TotalPaymentThisWeek       float64 `json:"total_payment_this_week"`
	ContractorsPaymentThisWeek float64 `json:"contractors_payment_this_week"`
	TotalAdvancesThisWeek      float64 `json:"total_advances_this_week"`
	NetPaymentThisWeek         float64 `json:"net_payment_this_week"`
	TotalToPay                 float64 `json:"total_to_pay_friday"`
}

// Dashboard summarizes the week containing s.Now(). Payroll uses the same
// per-employee rules as CalculateWeek; advances cover every advance dated
// to the week.
func (s *PayrollService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	weekStart := utils.WeekStartString(s.Now())
	db := s.DB.WithContext(ctx)

	var totalEmployees, totalContractors, activeContractors int64
	if err := db.Model(&models.Employee{}).Count(&totalEmployees).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Contractor{}).Count(&totalContractors).Error; err != nil {
		return nil, err
	}

	in, err := s.loadWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	contractors, err := s.activeContractors(ctx)
	if err != nil {
		return nil, err
	}
	activeContractors = int64(len(contractors))

	var payroll PayTotals
	for _, p := range in.pays() {
		payroll.Add(p)
	}

	contractorsPayment := 0.0
	for _, c := range contractors {
		contractorsPayment = sum(contractorsPayment, c.WeeklyPayment)
	}
	advances := in.allAdvance.InexactFloat64()

	return &DashboardStats{
		WeekStartDate:              weekStart,
		TotalEmployees:             int(totalEmployees),
		ActiveEmployees:            len(in.employees),
		TotalContractors:           int(totalContractors),
		ActiveContractors:          int(activeContractors),
		TotalPaymentThisWeek:       payroll.TotalSalary,
		ContractorsPaymentThisWeek: contractorsPayment,
		TotalAdvancesThisWeek:      advances,
		NetPaymentThisWeek:         SubtractSigned(payroll.TotalSalary, advances),
		TotalToPay:                 SubtractSigned(sum(payroll.TotalSalary, contractorsPayment), advances),
	}, nil
}
