package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/payroll-app/cache"
	"github.com/yeremiapane/payroll-app/services"
	"github.com/yeremiapane/payroll-app/utils"
)

// DashboardController serves the current-week snapshot, cached per week start.
type DashboardController struct {
	Payroll *services.PayrollService
	Cache   cache.Store
	TTL     time.Duration
}

func NewDashboardController(payroll *services.PayrollService, store cache.Store, ttl time.Duration) *DashboardController {
	if store == nil {
		store = cache.Nop{}
	}
	return &DashboardController{Payroll: payroll, Cache: store, TTL: ttl}
}

func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.DashboardKey(utils.WeekStartString(dc.Payroll.Now()))

	var stats services.DashboardStats
	hit, err := dc.Cache.GetObject(ctx, key, &stats)
	if err != nil {
		utils.LogError("controllers", "GetDashboardStats", "cache get", key, err)
	}
	if hit {
		utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
		return
	}

	gen, genErr := cache.DashboardGeneration(ctx, dc.Cache)
	fresh, err := dc.Payroll.Dashboard(ctx)
	if err != nil {
		respondServiceError(c, "GetDashboardStats", err)
		return
	}
	if dc.TTL > 0 && genErr == nil {
		dc.store(c, key, gen, fresh)
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", fresh)
}

// store caches the snapshot, then takes it back out if a write invalidated the
// dashboard while it was being computed.
func (dc *DashboardController) store(c *gin.Context, key, gen string, stats *services.DashboardStats) {
	ctx := c.Request.Context()
	if err := dc.Cache.SetObject(ctx, key, stats, dc.TTL); err != nil {
		utils.LogError("controllers", "GetDashboardStats", "cache set", key, err)
		return
	}
	current, err := cache.DashboardGeneration(ctx, dc.Cache)
	if err == nil && current == gen {
		return
	}
	if err := dc.Cache.DeletePrefix(ctx, key); err != nil {
		utils.LogError("controllers", "GetDashboardStats", "cache delete", key, err)
	}
}
