package services

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"github.com/yeremiapane/payroll-app/utils"
)

const (
	employeesSheet   = "Employees"
	contractorsSheet = "Contractors"
)

var employeeColumns = []string{
	"Employee", "Project", "Trade", "Daily Salary", "Days Worked", "Late Hours",
	"Gross Salary", "Late Discount", "Total Salary", "Advances", "Net Payment",
}

var contractorColumns = []string{
	"Contractor", "Project", "Weekly Payment", "Budget", "Total Paid",
	"Remaining Balance", "After Payment Balance",
}

// WriteSpreadsheet renders the preview as an xlsx workbook.
func WriteSpreadsheet(w io.Writer, p *WeeklyPreview) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(contractorsSheet); err != nil {
		return err
	}

	if err := writeRow(f, employeesSheet, 1, toRow(employeeColumns)); err != nil {
		return err
	}
	row := 2
	for _, e := range p.Employees {
		if err := writeRow(f, employeesSheet, row, []interface{}{
			e.Name, e.ProjectName, e.Trade, e.DailySalary, e.DaysWorked, e.LateHours,
			e.GrossSalary, e.LateDiscount, e.TotalSalary, e.TotalAdvances, e.NetPayment,
		}); err != nil {
			return err
		}
		row++
	}
	t := p.EmployeeTotals
	if err := writeRow(f, employeesSheet, row, []interface{}{
		"TOTAL", "", "", "", t.DaysWorked, "",
		t.GrossSalary, t.LateDiscount, t.TotalSalary, t.TotalAdvances, t.NetPayment,
	}); err != nil {
		return err
	}

	if err := writeRow(f, contractorsSheet, 1, toRow(contractorColumns)); err != nil {
		return err
	}
	row = 2
	for _, c := range p.Contractors {
		if err := writeRow(f, contractorsSheet, row, []interface{}{
			c.Name, c.ProjectName, c.WeeklyPayment, c.Budget, c.TotalPaid,
			c.RemainingBalance, c.AfterPaymentBalance,
		}); err != nil {
			return err
		}
		row++
	}
	if err := writeRow(f, contractorsSheet, row, []interface{}{"TOTAL", "", p.ContractorsTotal}); err != nil {
		return err
	}

	return f.Write(w)
}

func toRow(cols []string) []interface{} {
	row := make([]interface{}, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return row
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

const (
	receiptHeight = 52.0
	pageBottom    = 287.0
)

// WriteReceipts renders one printable receipt per employee and contractor.
func WriteReceipts(w io.Writer, p *WeeklyPreview) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	period := fmt.Sprintf("Week %s to %s", p.WeekStartDate, p.WeekEndDate)

	for _, e := range p.Employees {
		lines := [][2]string{
			{"Days worked", fmt.Sprintf("%d", e.DaysWorked)},
			{"Gross salary", utils.FormatCurrency(e.GrossSalary)},
			{fmt.Sprintf("Late discount (%.2f h)", e.LateHours), "-" + utils.FormatCurrency(e.LateDiscount)},
			{"Advances", "-" + utils.FormatCurrency(e.TotalAdvances)},
		}
		receipt(pdf, tr, "Payment receipt", e.Name, period, lines, "Net payment", utils.FormatCurrency(e.NetPayment))
	}

	for _, c := range p.Contractors {
		lines := [][2]string{
			{"Project", c.ProjectName},
			{"Budget", utils.FormatCurrency(c.Budget)},
			{"Paid to date", utils.FormatCurrency(c.TotalPaid)},
			{"Balance after payment", utils.FormatCurrency(c.AfterPaymentBalance)},
		}
		receipt(pdf, tr, "Contractor receipt", c.Name, period, lines, "Weekly payment", utils.FormatCurrency(c.WeeklyPayment))
	}

	return pdf.Output(w)
}

func receipt(pdf *fpdf.Fpdf, tr func(string) string, title, name, period string, lines [][2]string, totalLabel, total string) {
	if pdf.GetY()+receiptHeight > pageBottom {
		pdf.AddPage()
	}

	x, y := pdf.GetX(), pdf.GetY()
	width, _ := pdf.GetPageSize()
	width -= 20

	pdf.SetDrawColor(30, 64, 175)
	pdf.SetLineWidth(0.6)
	pdf.Rect(x, y, width, receiptHeight-4, "D")

	pdf.SetXY(x+3, y+3)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(width/2, 6, tr(title), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(width/2-6, 6, tr(period), "", 1, "R", false, 0, "")

	pdf.SetX(x + 3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(width-6, 6, tr(name), "B", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, l := range lines {
		pdf.SetX(x + 3)
		pdf.CellFormat(width/2, 5, tr(l[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(width/2-6, 5, tr(l[1]), "", 1, "R", false, 0, "")
	}

	pdf.SetX(x + 3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(width/2, 7, tr(totalLabel), "T", 0, "L", false, 0, "")
	pdf.CellFormat(width/2-6, 7, tr(total), "T", 1, "R", false, 0, "")

	pdf.SetXY(x, y+receiptHeight)
}
