package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// defaultReply stands in when an authority changes a status without
// attaching any reply text.
const defaultReply = "No reply provided"

// GrievanceService implements the complaint lifecycle and routing core.
type GrievanceService struct {
	grievances  ports.GrievanceRepository
	students    ports.StudentRepository
	authorities ports.AuthorityRepository
	settings    ports.SettingsRepository
	notifier    ports.Notifier
	logger      zerolog.Logger
	now         func() time.Time
}

func NewGrievanceService(
	grievances ports.GrievanceRepository,
	students ports.StudentRepository,
	authorities ports.AuthorityRepository,
	settings ports.SettingsRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *GrievanceService {
	return &GrievanceService{
		grievances:  grievances,
		students:    students,
		authorities: authorities,
		settings:    settings,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create files a new grievance: the owning student is resolved by canonical
// identifier, the department is parsed from the category, and the initial
// handler comes from the fixed routing table.
func (s *GrievanceService) Create(ctx context.Context, input ports.CreateGrievanceInput) (*ports.GrievanceRecord, error) {
	student, err := s.students.FindByStudentID(ctx, strings.ToUpper(input.StudentID))
	if err != nil {
		return nil, fmt.Errorf("create grievance: %w", err)
	}

	department := domain.DepartmentFromCategory(input.Category)
	g := &domain.Grievance{
		StudentProfileID:          student.ID,
		Student:                   *student,
		Category:                  input.Category,
		Description:               input.Description,
		Image:                     input.Image,
		Status:                    domain.StatusPending,
		DepartmentCategory:        department,
		CurrentHandlerDesignation: domain.HandlerForDepartment(department),
		CreatedAt:                 s.now(),
	}

	if err := s.grievances.Create(ctx, g); err != nil {
		s.logger.Error().Err(err).Str("student_id", student.StudentID).Msg("failed to create grievance")
		return nil, err
	}

	s.logger.Info().
		Uint("grievance_id", g.ID).
		Str("student_id", student.StudentID).
		Str("handler", g.CurrentHandlerDesignation).
		Msg("grievance filed")

	return recordOf(g), nil
}

// List returns grievances scoped to the caller, newest first. A missing
// profile for a student or authority caller yields an empty list.
func (s *GrievanceService) List(ctx context.Context, input ports.ListGrievancesInput) ([]ports.GrievanceRecord, error) {
	var (
		rows []*domain.Grievance
		err  error
	)

	switch input.Role {
	case domain.RoleStudent:
		student, ferr := s.students.FindByStudentID(ctx, strings.ToUpper(input.Username))
		if ferr != nil {
			if errors.Is(ferr, domain.ErrStudentNotFound) {
				return []ports.GrievanceRecord{}, nil
			}
			return nil, ferr
		}
		rows, err = s.grievances.ListByStudentProfile(ctx, student.ID)
	case domain.RoleAuthority:
		authority, ferr := s.authorities.FindByUsername(ctx, input.Username)
		if ferr != nil {
			if errors.Is(ferr, domain.ErrAuthorityNotFound) {
				return []ports.GrievanceRecord{}, nil
			}
			return nil, ferr
		}
		rows, err = s.grievances.ListByHandler(ctx, authority.Designation)
	default:
		rows, err = s.grievances.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	records := make([]ports.GrievanceRecord, 0, len(rows))
	for _, g := range rows {
		records = append(records, *recordOf(g))
	}
	return records, nil
}

// Update applies the authority path (status/reply/resolution image/handler
// reassignment) and the student path (feedback stars), either or both. The
// status value is written verbatim; resolved_at is stamped only when the
// new status is Resolved. A notification is enqueued after a status change
// when email alerts are on and the student has an email; its delivery never
// affects the request.
func (s *GrievanceService) Update(ctx context.Context, input ports.UpdateGrievanceInput) (*ports.GrievanceRecord, error) {
	g, err := s.grievances.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		g.Status = domain.GrievanceStatus(*input.Status)
		if input.Reply != "" {
			g.AuthorityReply = input.Reply
		} else {
			g.AuthorityReply = defaultReply
		}
		if input.ResolvedImage != "" {
			g.ResolvedImage = input.ResolvedImage
		}
		if g.Status == domain.StatusResolved {
			now := s.now()
			g.ResolvedAt = &now
		}
	}
	if input.HandlerDesignation != nil {
		g.CurrentHandlerDesignation = *input.HandlerDesignation
	}
	if input.FeedbackStars != nil {
		g.FeedbackStars = *input.FeedbackStars
	}

	if err := s.grievances.Update(ctx, g); err != nil {
		return nil, err
	}

	if input.Status != nil {
		s.maybeNotify(ctx, g)
	}

	return recordOf(g), nil
}

// maybeNotify enqueues a status-change email when the global toggle allows
// it and the student has an address. Errors reading settings are logged and
// swallowed: notification is best-effort by contract.
func (s *GrievanceService) maybeNotify(ctx context.Context, g *domain.Grievance) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Uint("grievance_id", g.ID).Msg("settings lookup failed, skipping notification")
		return
	}
	if !cfg.EmailAlerts || g.Student.User.Email == "" {
		return
	}

	s.notifier.Notify(ports.StatusNotification{
		GrievanceID: g.ID,
		StudentID:   g.Student.StudentID,
		Email:       g.Student.User.Email,
		Category:    g.Category,
		Status:      string(g.Status),
		Reply:       g.AuthorityReply,
	})
}

// Delete retracts a grievance. Only the owning student may delete, and only
// within the retraction window; the boundary is inclusive, so exactly 300
// seconds after filing still succeeds.
func (s *GrievanceService) Delete(ctx context.Context, input ports.DeleteGrievanceInput) error {
	g, err := s.grievances.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if !strings.EqualFold(g.Student.StudentID, input.CallerStudentID) {
		return domain.ErrForbidden
	}
	if !g.DeletableAt(s.now()) {
		return domain.ErrDeleteWindowExpired
	}

	if err := s.grievances.Delete(ctx, g.ID); err != nil {
		return err
	}

	s.logger.Info().Uint("grievance_id", g.ID).Str("student_id", g.Student.StudentID).Msg("grievance retracted")
	return nil
}

func recordOf(g *domain.Grievance) *ports.GrievanceRecord {
	return &ports.GrievanceRecord{
		ID:                        g.ID,
		StudentID:                 g.Student.StudentID,
		StudentName:               g.Student.User.Name,
		Category:                  g.Category,
		Description:               g.Description,
		Image:                     g.Image,
		ResolvedImage:             g.ResolvedImage,
		Status:                    string(g.Status),
		AuthorityReply:            g.AuthorityReply,
		FeedbackStars:             g.FeedbackStars,
		CurrentHandlerDesignation: g.CurrentHandlerDesignation,
		DepartmentCategory:        g.DepartmentCategory,
		CreatedAt:                 g.CreatedAt,
		ResolvedAt:                g.ResolvedAt,
	}
}
