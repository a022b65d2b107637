package cache

import (
	"context"

	"github.com/google/uuid"
)

// DashboardPrefix namespaces dashboard snapshots; one key per week start.
const DashboardPrefix = "dashboard:stats:"

// dashboardGenerationKey changes on every invalidation. It sits outside
// DashboardPrefix so DeletePrefix leaves it alone.
const dashboardGenerationKey = "dashboard:generation"

func DashboardKey(weekStart string) string {
	return DashboardPrefix + weekStart
}

// InvalidateDashboard rotates the generation marker and then drops every snapshot.
func InvalidateDashboard(ctx context.Context, s Store) error {
	if err := s.SetObject(ctx, dashboardGenerationKey, uuid.NewString(), 0); err != nil {
		return err
	}
	return s.DeletePrefix(ctx, DashboardPrefix)
}

// DashboardGeneration returns the current marker, empty before the first invalidation.
func DashboardGeneration(ctx context.Context, s Store) (string, error) {
	var gen string
	if _, err := s.GetObject(ctx, dashboardGenerationKey, &gen); err != nil {
		return "", err
	}
	return gen, nil
}
