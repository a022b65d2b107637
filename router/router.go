package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/cache"
	"github.com/yeremiapane/payroll-app/controllers"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/middlewares"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
	"gorm.io/gorm"
)

// Options tunes the HTTP surface. The zero value disables rate limiting and
// dashboard caching and allows any origin.
type Options struct {
	CORSOrigins     []string
	DashboardTTL    time.Duration
	RateLimitPerSec int
	RateLimitBurst  int

	// Now overrides the clock behind the dashboard; tests pin it.
	Now func() time.Time
}

func SetupRouter(db *gorm.DB, h *hub.Hub, store cache.Store, opts Options) *gin.Engine {
	if h == nil {
		h = hub.New()
	}
	if store == nil {
		store = cache.Nop{}
	}

	utils.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(opts.RateLimitPerSec, opts.RateLimitBurst).RateLimit())

	employeeCtrl := controllers.NewEmployeeController(db, h)
	projectCtrl := controllers.NewProjectController(db, h)
	contractorCtrl := controllers.NewContractorController(db, h)
	attendanceCtrl := controllers.NewAttendanceController(db, h)
	advanceCtrl := controllers.NewAdvanceController(db, h)
	certificationCtrl := controllers.NewCertificationController(db, h)
	paymentCtrl := controllers.NewPaymentController(db, h)

	payroll := services.NewPayrollService(db)
	if opts.Now != nil {
		payroll.Now = opts.Now
		paymentCtrl.Payroll.Now = opts.Now
	}
	dashboardCtrl := controllers.NewDashboardController(payroll, store, opts.DashboardTTL)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.Use(middlewares.InvalidateDashboard(store))

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "PayrollPro API"})
	})

	// EMPLOYEES
	api.POST("/employees", employeeCtrl.CreateEmployee)
	api.GET("/employees", employeeCtrl.GetAllEmployees)
	api.GET("/employees/:id", employeeCtrl.GetEmployeeByID)
	api.PUT("/employees/:id", employeeCtrl.UpdateEmployee)
	api.DELETE("/employees/:id", employeeCtrl.DeleteEmployee)

	// PROJECTS
	api.POST("/projects", projectCtrl.CreateProject)
	api.GET("/projects", projectCtrl.GetAllProjects)
	api.GET("/projects/:id", projectCtrl.GetProjectByID)
	api.PUT("/projects/:id", projectCtrl.UpdateProject)
	api.DELETE("/projects/:id", projectCtrl.DeleteProject)

	// CONTRACTORS
	api.POST("/contractors", contractorCtrl.CreateContractor)
	api.GET("/contractors", contractorCtrl.GetAllContractors)
	api.GET("/contractors/:id", contractorCtrl.GetContractorByID)
	api.PUT("/contractors/:id", contractorCtrl.UpdateContractor)
	api.DELETE("/contractors/:id", contractorCtrl.DeleteContractor)

	// ATTENDANCE
	api.POST("/attendance", attendanceCtrl.RecordAttendance)
	api.GET("/attendance", attendanceCtrl.GetAllAttendance)
	api.GET("/attendance/week/:week_start", attendanceCtrl.GetAttendanceByWeek)

	// ADVANCES
	api.POST("/advances", advanceCtrl.CreateAdvance)
	api.GET("/advances", advanceCtrl.GetAllAdvances)
	api.GET("/advances/employee/:employee_id", advanceCtrl.GetAdvancesByEmployee)
	api.DELETE("/advances/:id", advanceCtrl.DeleteAdvance)

	// CERTIFICATIONS
	api.POST("/certifications", certificationCtrl.CreateCertification)
	api.GET("/certifications", certificationCtrl.GetAllCertifications)
	api.GET("/certifications/contractor/:contractor_id", certificationCtrl.GetCertificationsByContractor)
	api.DELETE("/certifications/:id", certificationCtrl.DeleteCertification)

	// PAYMENTS
	api.POST("/payments/calculate", paymentCtrl.CalculatePayments)
	api.GET("/payments/history", paymentCtrl.GetPaymentHistory)
	api.GET("/payments/by-project/:week_start", paymentCtrl.GetPaymentsByProject)
	api.GET("/payments/preview/:week_start", paymentCtrl.GetPaymentPreview)
	api.GET("/payments/receipts/:week_start", middlewares.DownloadLogger("receipts"), paymentCtrl.DownloadReceipts)
	api.GET("/payments/export/:week_start", middlewares.DownloadLogger("spreadsheet"), paymentCtrl.ExportPayments)

	// DASHBOARD
	api.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
	api.GET("/ws", controllers.LiveHandler(h))

	return r
}
