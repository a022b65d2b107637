package services

import (
	"context"
	"sort"

	"github.com/yeremiapane/payroll-app/models"
)

type TradeBreakdown struct {
	Trade     string        `json:"trade"`
	Employees []EmployeePay `json:"employees"`
	Subtotal  PayTotals     `json:"subtotal"`
}

type ProjectBreakdown struct {
	ProjectID   string           `json:"project_id,omitempty"`
	ProjectName string           `json:"project_name"`
	Trades      []TradeBreakdown `json:"trades"`
	Total       PayTotals        `json:"total"`
}

type PayrollBreakdown struct {
	WeekStartDate string             `json:"week_start_date"`
	Projects      []ProjectBreakdown `json:"projects"`
	Unassigned    *ProjectBreakdown  `json:"unassigned,omitempty"`
	GrandTotal    PayTotals          `json:"grand_total"`
}

// GroupByProject regroups pays by project and then trade. Pays whose project id
// is empty or not in projects land in the unassigned bucket, which is nil when empty.
func GroupByProject(pays []EmployeePay, projects map[string]models.Project) ([]ProjectBreakdown, *ProjectBreakdown) {
	byProject := make(map[string][]EmployeePay)
	var unassigned []EmployeePay
	for _, p := range pays {
		if _, ok := projects[p.ProjectID]; p.ProjectID == "" || !ok {
			unassigned = append(unassigned, p)
			continue
		}
		byProject[p.ProjectID] = append(byProject[p.ProjectID], p)
	}

	result := make([]ProjectBreakdown, 0, len(byProject))
	for id, group := range byProject {
		project := projects[id]
		result = append(result, buildProject(project.ID, project.Name, group))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ProjectName == result[j].ProjectName {
			return result[i].ProjectID < result[j].ProjectID
		}
		return result[i].ProjectName < result[j].ProjectName
	})

	if len(unassigned) == 0 {
		return result, nil
	}
	bucket := buildProject("", models.UnassignedLabel, unassigned)
	return result, &bucket
}

func buildProject(id, name string, pays []EmployeePay) ProjectBreakdown {
	byTrade := make(map[string][]EmployeePay)
	for _, p := range pays {
		trade := p.Trade
		if trade == "" {
			trade = models.UnassignedLabel
		}
		byTrade[trade] = append(byTrade[trade], p)
	}

	project := ProjectBreakdown{ProjectID: id, ProjectName: name}
	for trade, group := range byTrade {
		tb := TradeBreakdown{Trade: trade, Employees: group}
		for _, p := range group {
			tb.Subtotal.Add(p)
		}
		project.Total.Merge(tb.Subtotal)
		project.Trades = append(project.Trades, tb)
	}
	sort.Slice(project.Trades, func(i, j int) bool {
		return project.Trades[i].Trade < project.Trades[j].Trade
	})
	return project
}

// BreakdownByProject computes the week's pay for active employees grouped by
// project and trade. Nothing is written.
func (s *PayrollService) BreakdownByProject(ctx context.Context, weekStart string) (*PayrollBreakdown, error) {
	in, err := s.loadWeek(ctx, weekStart)
	if err != nil {
		return nil, err
	}

	index, err := s.projectIndex(ctx)
	if err != nil {
		return nil, err
	}

	grouped, unassigned := GroupByProject(in.pays(), index)
	out := &PayrollBreakdown{
		WeekStartDate: weekStart,
		Projects:      grouped,
		Unassigned:    unassigned,
	}
	for _, p := range grouped {
		out.GrandTotal.Merge(p.Total)
	}
	if unassigned != nil {
		out.GrandTotal.Merge(unassigned.Total)
	}
	return out, nil
}

func (s *PayrollService) projectIndex(ctx context.Context) (map[string]models.Project, error) {
	var projects []models.Project
	if err := s.DB.WithContext(ctx).Limit(MaxListRows).Find(&projects).Error; err != nil {
		return nil, err
	}
	index := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		index[p.ID] = p
	}
	return index, nil
}

// projectLabel names the employee's project, or the unassigned label when the
// id is empty or no longer exists.
func projectLabel(id string, projects map[string]models.Project) string {
	if p, ok := projects[id]; ok && id != "" {
		return p.Name
	}
	return models.UnassignedLabel
}
