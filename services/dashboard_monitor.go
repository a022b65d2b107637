package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/payroll-app/hub"
	"github.com/yeremiapane/payroll-app/utils"
)

// DashboardMonitor pushes the dashboard snapshot to websocket clients on a
// cron schedule. Ticks with no connected clients skip the query.
type DashboardMonitor struct {
	Payroll  *PayrollService
	Hub      *hub.Hub
	Schedule string
	Timeout  time.Duration

	cron *cron.Cron
}

func NewDashboardMonitor(payroll *PayrollService, h *hub.Hub, schedule string) *DashboardMonitor {
	return &DashboardMonitor{
		Payroll:  payroll,
		Hub:      h,
		Schedule: schedule,
		Timeout:  10 * time.Second,
	}
}

// Start registers the job. An empty schedule disables the monitor.
func (m *DashboardMonitor) Start() error {
	if m.Schedule == "" {
		return nil
	}
	m.cron = cron.New()
	if _, err := m.cron.AddFunc(m.Schedule, m.Push); err != nil {
		return err
	}
	m.cron.Start()
	utils.Info(logrus.Fields{"schedule": m.Schedule}).Info("dashboard monitor started")
	return nil
}

func (m *DashboardMonitor) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
}

// Push computes the snapshot and broadcasts it.
func (m *DashboardMonitor) Push() {
	if m.Hub.ClientCount() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	stats, err := m.Payroll.Dashboard(ctx)
	if err != nil {
		utils.LogError("services", "DashboardMonitor.Push", "Dashboard", nil, err)
		return
	}
	m.Hub.Broadcast(hub.EventDashboardUpdate, stats)
}
