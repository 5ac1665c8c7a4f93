package service

import (
	"context"
	"fmt"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// StatsService computes the dashboard counters.
type StatsService struct {
	grievances  ports.GrievanceRepository
	students    ports.StudentRepository
	authorities ports.AuthorityRepository
}

func NewStatsService(grievances ports.GrievanceRepository, students ports.StudentRepository, authorities ports.AuthorityRepository) *StatsService {
	return &StatsService{grievances: grievances, students: students, authorities: authorities}
}

// Dashboard returns aggregate counts and the resolution percentage. The
// rate is integer floor division, rendered as "NN%", and "0%" when no
// grievances exist.
func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	total, pending, resolved, escalated, err := s.grievances.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	studentCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	authorityCount, err := s.authorities.Count(ctx)
	if err != nil {
		return nil, err
	}

	rate := "0%"
	if total > 0 {
		rate = fmt.Sprintf("%d%%", resolved*100/total)
	}

	return &ports.DashboardStats{
		Grievances:  total,
		Pending:     pending,
		Resolved:    resolved,
		Escalated:   escalated,
		Students:    studentCount,
		Authorities: authorityCount,
		ResolveRate: rate,
	}, nil
}
