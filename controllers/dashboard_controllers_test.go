package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/payroll-app/cache"
	"github.com/yeremiapane/payroll-app/controllers"
	"github.com/yeremiapane/payroll-app/models"
	"github.com/yeremiapane/payroll-app/services"
	"gorm.io/gorm"
)

func setupDashboardRouter(db *gorm.DB, store cache.Store, ttl time.Duration) *gin.Engine {
	payroll := services.NewPayrollService(db)
	payroll.Now = func() time.Time { return time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC) }

	router := gin.New()
	ctrl := controllers.NewDashboardController(payroll, store, ttl)
	router.GET("/dashboard/stats", ctrl.GetDashboardStats)
	return router
}

func TestDashboardStatsEmpty(t *testing.T) {
	router := setupDashboardRouter(setupTestDB(t), nil, 0)

	w := perform(t, router, http.MethodGet, "/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats services.DashboardStats
	decode(t, w, &stats)
	assert.Equal(t, services.DashboardStats{WeekStartDate: "2025-01-06"}, stats)
}

func TestDashboardStatsCached(t *testing.T) {
	db := setupTestDB(t)
	store := cache.NewMemory()
	router := setupDashboardRouter(db, store, time.Minute)

	require.NoError(t, db.Create(&models.Contractor{Name: "Obras SRL", WeeklyPayment: 50000, Budget: 100000, IsActive: true}).Error)

	var stats services.DashboardStats
	decode(t, perform(t, router, http.MethodGet, "/dashboard/stats", nil), &stats)
	assert.Equal(t, 50000.0, stats.TotalToPay)

	require.NoError(t, db.Create(&models.Contractor{Name: "Techos SA", WeeklyPayment: 20000, Budget: 100000, IsActive: true}).Error)
	decode(t, perform(t, router, http.MethodGet, "/dashboard/stats", nil), &stats)
	assert.Equal(t, 50000.0, stats.TotalToPay)
	assert.Equal(t, 1, stats.TotalContractors)

	var cached services.DashboardStats
	hit, err := store.GetObject(context.Background(), cache.DashboardKey("2025-01-06"), &cached)
	require.NoError(t, err)
	assert.True(t, hit)

	require.NoError(t, store.DeletePrefix(context.Background(), cache.DashboardPrefix))
	decode(t, perform(t, router, http.MethodGet, "/dashboard/stats", nil), &stats)
	assert.Equal(t, 70000.0, stats.TotalToPay)
	assert.Equal(t, 2, stats.TotalContractors)
}

// invalidatingStore lands a write's invalidation between the snapshot being
// computed and being cached.
type invalidatingStore struct {
	*cache.Memory
}

func (s invalidatingStore) SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error {
	if key == cache.DashboardKey("2025-01-06") {
		if err := cache.InvalidateDashboard(ctx, s.Memory); err != nil {
			return err
		}
	}
	return s.Memory.SetObject(ctx, key, obj, exp)
}

func TestDashboardStatsNotCachedAcrossConcurrentWrite(t *testing.T) {
	db := setupTestDB(t)
	store := invalidatingStore{Memory: cache.NewMemory()}
	router := setupDashboardRouter(db, store, time.Minute)

	require.NoError(t, db.Create(&models.Contractor{Name: "Obras SRL", WeeklyPayment: 50000, Budget: 100000, IsActive: true}).Error)

	var stats services.DashboardStats
	decode(t, perform(t, router, http.MethodGet, "/dashboard/stats", nil), &stats)
	assert.Equal(t, 50000.0, stats.TotalToPay)

	var cached services.DashboardStats
	hit, err := store.Memory.GetObject(context.Background(), cache.DashboardKey("2025-01-06"), &cached)
	require.NoError(t, err)
	assert.False(t, hit)
}
