package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

// HoursPerDay converts a daily salary into the hourly rate used for late discounts.
const HoursPerDay = 8

// EmployeePay is one employee's weekly pay breakdown.
type EmployeePay struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	ProjectID     string  `json:"project_id,omitempty"`
	ProjectName   string  `json:"project_name,omitempty"`
	Trade         string  `json:"trade,omitempty"`
	DailySalary   float64 `json:"daily_salary"`
	DaysWorked    int     `json:"days_worked"`
	LateHours     float64 `json:"late_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	GrossSalary   float64 `json:"gross_salary"`
	LateDiscount  float64 `json:"late_discount"`
	TotalSalary   float64 `json:"total_salary"`
	TotalAdvances float64 `json:"total_advances"`
	NetPayment    float64 `json:"net_payment"`
}

// ComputeEmployeePay applies the weekly pay rules to rows already filtered to
// one employee and one week. Neither total_salary nor net_payment is clamped.
func ComputeEmployeePay(employee models.Employee, attendance []models.Attendance, advances []models.Advance) EmployeePay {
	daysWorked := 0
	lateHours := decimal.Zero
	for _, a := range attendance {
		if a.CountsAsWorked() {
			daysWorked++
		}
		if a.Status == models.StatusLate {
			lateHours = lateHours.Add(decimal.NewFromFloat(a.LateHours))
		}
	}

	totalAdvances := decimal.Zero
	for _, adv := range advances {
		totalAdvances = totalAdvances.Add(decimal.NewFromFloat(adv.Amount))
	}

	daily := decimal.NewFromFloat(employee.DailySalary)
	hourlyRate := daily.Div(decimal.NewFromInt(HoursPerDay))
	lateDiscount := lateHours.Mul(hourlyRate)
	gross := daily.Mul(decimal.NewFromInt(int64(daysWorked)))
	total := gross.Sub(lateDiscount)
	net := total.Sub(totalAdvances)

	pay := EmployeePay{
		EmployeeID:    employee.ID,
		Name:          employee.Name,
		DailySalary:   employee.DailySalary,
		DaysWorked:    daysWorked,
		LateHours:     lateHours.InexactFloat64(),
		HourlyRate:    hourlyRate.InexactFloat64(),
		GrossSalary:   gross.InexactFloat64(),
		LateDiscount:  lateDiscount.InexactFloat64(),
		TotalSalary:   total.InexactFloat64(),
		TotalAdvances: totalAdvances.InexactFloat64(),
		NetPayment:    net.InexactFloat64(),
	}
	if employee.ProjectID != nil {
		pay.ProjectID = *employee.ProjectID
	}
	if employee.Trade != nil {
		pay.Trade = *employee.Trade
	}
	return pay
}

// PayTotals sums a group of EmployeePay rows.
type PayTotals struct {
	Employees     int     `json:"employees"`
	DaysWorked    int     `json:"days_worked"`
	GrossSalary   float64 `json:"gross_salary"`
	LateDiscount  float64 `json:"late_discount"`
	TotalSalary   float64 `json:"total_salary"`
	TotalAdvances float64 `json:"total_advances"`
	NetPayment    float64 `json:"net_payment"`
}

func (t *PayTotals) Add(p EmployeePay) {
	t.Employees++
	t.DaysWorked += p.DaysWorked
	t.GrossSalary = sum(t.GrossSalary, p.GrossSalary)
	t.LateDiscount = sum(t.LateDiscount, p.LateDiscount)
	t.TotalSalary = sum(t.TotalSalary, p.TotalSalary)
	t.TotalAdvances = sum(t.TotalAdvances, p.TotalAdvances)
	t.NetPayment = sum(t.NetPayment, p.NetPayment)
}

func (t *PayTotals) Merge(o PayTotals) {
	t.Employees += o.Employees
	t.DaysWorked += o.DaysWorked
	t.GrossSalary = sum(t.GrossSalary, o.GrossSalary)
	t.LateDiscount = sum(t.LateDiscount, o.LateDiscount)
	t.TotalSalary = sum(t.TotalSalary, o.TotalSalary)
	t.TotalAdvances = sum(t.TotalAdvances, o.TotalAdvances)
	t.NetPayment = sum(t.NetPayment, o.NetPayment)
}

func sum(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// CalculationResult is what a payroll run reports back.
type CalculationResult struct {
	WeekStartDate      string `json:"week_start_date"`
	Count              int    `json:"count"`
	ContractorsUpdated int    `json:"contractors_updated"`
}

type PayrollService struct {
	DB     *gorm.DB
	Ledger *Ledger
	Now    func() time.Time
}

func NewPayrollService(db *gorm.DB) *PayrollService {
	return &PayrollService{
		DB:     db,
		Ledger: NewLedger(db),
		Now:    time.Now,
	}
}

// weekInputs holds everything one week's computation reads.
type weekInputs struct {
	employees  []models.Employee
	attendance map[string][]models.Attendance
	advances   map[string][]models.Advance
	allAdvance decimal.Decimal
}

func (s *PayrollService) loadWeek(ctx context.Context, weekStart string) (*weekInputs, error) {
	db := s.DB.WithContext(ctx)

	var employees []models.Employee
	if err := db.Where("is_active = ?", true).Order("name ASC").Limit(MaxListRows).Find(&employees).Error; err != nil {
		return nil, err
	}

	var attendance []models.Attendance
	if err := db.Where("week_start_date = ?", weekStart).Limit(MaxWideListRows).Find(&attendance).Error; err != nil {
		return nil, err
	}

	var advances []models.Advance
	if err := db.Where("week_start_date = ?", weekStart).Limit(MaxWideListRows).Find(&advances).Error; err != nil {
		return nil, err
	}

	in := &weekInputs{
		employees:  employees,
		attendance: make(map[string][]models.Attendance),
		advances:   make(map[string][]models.Advance),
		allAdvance: decimal.Zero,
	}
	for _, a := range attendance {
		in.attendance[a.EmployeeID] = append(in.attendance[a.EmployeeID], a)
	}
	for _, a := range advances {
		in.advances[a.EmployeeID] = append(in.advances[a.EmployeeID], a)
		in.allAdvance = in.allAdvance.Add(decimal.NewFromFloat(a.Amount))
	}
	return in, nil
}

func (in *weekInputs) pays() []EmployeePay {
	pays := make([]EmployeePay, 0, len(in.employees))
	for _, e := range in.employees {
		pays = append(pays, ComputeEmployeePay(e, in.attendance[e.ID], in.advances[e.ID]))
	}
	return pays
}

func (s *PayrollService) activeContractors(ctx context.Context) ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Limit(MaxListRows).
		Find(&contractors).Error
	return contractors, err
}

// CalculateWeek pays every active employee and contractor for weekStart.
//
// Runs are not idempotent: every call appends a PaymentHistory row per
// employee and adds weekly_payment to each active contractor's total_paid
// again, even for a week that was already calculated. Rows written before a
// store failure stay written.
func (s *PayrollService) CalculateWeek(ctx context.Context, weekStart string) (*CalculationResult, error) {
	in, err := s.loadWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}
	contractors, err := s.activeContractors(ctx)
	if err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	paid := 0
	for _, pay := range in.pays() {
		history := models.PaymentHistory{
			EmployeeID:    pay.EmployeeID,
			WeekStartDate: weekStart,
			DaysWorked:    pay.DaysWorked,
			TotalSalary:   pay.TotalSalary,
			TotalAdvances: pay.TotalAdvances,
			NetPayment:    pay.NetPayment,
			PaidAt:        s.Now().UTC(),
		}
		if err := db.Create(&history).Error; err != nil {
			return nil, err
		}
		paid++
	}

	for _, c := range contractors {
		if _, err := s.Ledger.ApplyWeeklyPayment(ctx, db, c.ID, c.WeeklyPayment); err != nil {
			return nil, err
		}
	}

	utils.Info(logrus.Fields{
		"week_start_date":     weekStart,
		"employees_paid":      paid,
		"contractors_updated": len(contractors),
	}).Info("weekly payroll calculated")

	return &CalculationResult{
		WeekStartDate:      weekStart,
		Count:              paid,
		ContractorsUpdated: len(contractors),
	}, nil
}

// History lists payment snapshots, newest first.
func (s *PayrollService) History(ctx context.Context) ([]models.PaymentHistory, error) {
	var rows []models.PaymentHistory
	err := s.DB.WithContext(ctx).Order("paid_at DESC").Limit(MaxListRows).Find(&rows).Error
	return rows, err
}
