package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type PaymentController struct {
	Payroll *services.PayrollService
	Hub     *hub.Hub
}

func NewPaymentController(db *gorm.DB, h *hub.Hub) *PaymentController {
	return &PaymentController{Payroll: services.NewPayrollService(db), Hub: h}
}

// CalculatePayments -> pays the week. Calling it twice for the same week pays twice.
func (pc *PaymentController) CalculatePayments(c *gin.Context) {
	var req struct {
		WeekStartDate string `json:"week_start_date" binding:"required,datetime=2006-01-02"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidation(c, err)
		return
	}

	result, err := pc.Payroll.CalculateWeek(c.Request.Context(), req.WeekStartDate)
	if err != nil {
		respondServiceError(c, "CalculatePayments", err)
		return
	}

	pc.Hub.Broadcast(hub.EventPayrollCalculated, result)
	utils.RespondJSON(c, http.StatusOK, "Payments calculated successfully", result)
}

func (pc *PaymentController) GetPaymentHistory(c *gin.Context) {
	rows, err := pc.Payroll.History(c.Request.Context())
	if err != nil {
		respondServiceError(c, "GetPaymentHistory", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment history", rows)
}

func (pc *PaymentController) GetPaymentsByProject(c *gin.Context) {
	weekStart, ok := weekStartParam(c)
	if !ok {
		return
	}
	breakdown, err := pc.Payroll.BreakdownByProject(c.Request.Context(), weekStart)
	if err != nil {
		respondServiceError(c, "GetPaymentsByProject", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payments by project", breakdown)
}

func (pc *PaymentController) GetPaymentPreview(c *gin.Context) {
	preview, ok := pc.preview(c, "GetPaymentPreview")
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment preview", preview)
}

// DownloadReceipts -> printable A4 receipts for the week
func (pc *PaymentController) DownloadReceipts(c *gin.Context) {
	preview, ok := pc.preview(c, "DownloadReceipts")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := services.WriteReceipts(&buf, preview); err != nil {
		respondServiceError(c, "DownloadReceipts", err)
		return
	}
	attach(c, fmt.Sprintf("receipts-%s.pdf", preview.WeekStartDate), pdfContentType, buf.Bytes())
}

// ExportPayments -> xlsx with one sheet for employees and one for contractors
func (pc *PaymentController) ExportPayments(c *gin.Context) {
	preview, ok := pc.preview(c, "ExportPayments")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := services.WriteSpreadsheet(&buf, preview); err != nil {
		respondServiceError(c, "ExportPayments", err)
		return
	}
	attach(c, fmt.Sprintf("payroll-%s.xlsx", preview.WeekStartDate), xlsxContentType, buf.Bytes())
}

func (pc *PaymentController) preview(c *gin.Context, funcName string) (*services.WeeklyPreview, bool) {
	weekStart, ok := weekStartParam(c)
	if !ok {
		return nil, false
	}
	preview, err := pc.Payroll.Preview(c.Request.Context(), weekStart, utils.WeekEndString(weekStart))
	if err != nil {
		respondServiceError(c, funcName, err)
		return nil, false
	}
	return preview, true
}

func attach(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
