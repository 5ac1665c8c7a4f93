package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// DirectoryService manages student and authority accounts: registration
// (gated by the site toggle), listing, partial edits, and aggregate deletes.
type DirectoryService struct {
	students    ports.StudentRepository
	authorities ports.AuthorityRepository
	settings    ports.SettingsRepository
	logger      zerolog.Logger
}

func NewDirectoryService(
	students ports.StudentRepository,
	authorities ports.AuthorityRepository,
	settings ports.SettingsRepository,
	logger zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		students:    students,
		authorities: authorities,
		settings:    settings,
		logger:      logger,
	}
}

// registrationAllowed fails before any write when the global toggle is off.
func (s *DirectoryService) registrationAllowed(ctx context.Context) error {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if !cfg.AllowRegistration {
		return domain.ErrRegistrationClosed
	}
	return nil
}

// RegisterStudent creates a user and its student profile in one
// transaction. The student identifier is upper-cased before storage and
// becomes the username.
func (s *DirectoryService) RegisterStudent(ctx context.Context, input ports.RegisterStudentInput) (*ports.StudentRecord, error) {
	if err := s.registrationAllowed(ctx); err != nil {
		return nil, err
	}

	studentID := strings.ToUpper(strings.TrimSpace(input.StudentID))
	if studentID == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     studentID,
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
		Name:         input.Name,
		Email:        input.Email,
	}
	profile := &domain.StudentProfile{
		StudentID: studentID,
		Year:      input.Year,
		Branch:    input.Branch,
		Gender:    input.Gender,
	}

	if err := s.students.CreateWithUser(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("student_id", studentID).Msg("student registered")
	profile.User = *user
	return studentRecordOf(profile), nil
}

// RegisterAuthority creates a user and its authority profile in one
// transaction. An optional profile image path is attached to the user.
func (s *DirectoryService) RegisterAuthority(ctx context.Context, input ports.RegisterAuthorityInput) (*ports.AuthorityRecord, error) {
	if err := s.registrationAllowed(ctx); err != nil {
		return nil, err
	}

	employeeID := strings.TrimSpace(input.EmployeeID)
	if employeeID == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     employeeID,
		PasswordHash: string(hash),
		Role:         domain.RoleAuthority,
		Name:         input.Name,
		Email:        input.Email,
		ProfilePic:   input.ProfilePic,
	}
	profile := &domain.AuthorityProfile{
		EmployeeID:  employeeID,
		Department:  input.Department,
		Designation: input.Designation,
		Gender:      input.Gender,
	}

	if err := s.authorities.CreateWithUser(ctx, user, profile); err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", employeeID).Str("designation", input.Designation).Msg("authority registered")
	profile.User = *user
	return authorityRecordOf(profile), nil
}

func (s *DirectoryService) ListStudents(ctx context.Context) ([]ports.StudentRecord, error) {
	profiles, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]ports.StudentRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, *studentRecordOf(p))
	}
	return records, nil
}

// UpdateStudent applies a partial edit to the profile and its linked user.
func (s *DirectoryService) UpdateStudent(ctx context.Context, input ports.UpdateStudentInput) (*ports.StudentRecord, error) {
	profile, err := s.students.FindByStudentID(ctx, strings.ToUpper(input.StudentID))
	if err != nil {
		return nil, err
	}

	if input.Year != nil {
		profile.Year = *input.Year
	}
	if input.Branch != nil {
		profile.Branch = *input.Branch
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.Name != nil {
		profile.User.Name = *input.Name
	}
	if input.Email != nil {
		profile.User.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		profile.User.PasswordHash = string(hash)
	}

	if err := s.students.Update(ctx, profile); err != nil {
		return nil, err
	}
	return studentRecordOf(profile), nil
}

func (s *DirectoryService) DeleteStudent(ctx context.Context, studentID string) error {
	profile, err := s.students.FindByStudentID(ctx, strings.ToUpper(studentID))
	if err != nil {
		return err
	}
	if err := s.students.DeleteWithUser(ctx, profile); err != nil {
		return err
	}
	s.logger.Info().Str("student_id", profile.StudentID).Msg("student account deleted")
	return nil
}

func (s *DirectoryService) ListAuthorities(ctx context.Context) ([]ports.AuthorityRecord, error) {
	profiles, err := s.authorities.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]ports.AuthorityRecord, 0, len(profiles))
	for _, p := range profiles {
		records = append(records, *authorityRecordOf(p))
	}
	return records, nil
}

func (s *DirectoryService) UpdateAuthority(ctx context.Context, input ports.UpdateAuthorityInput) (*ports.AuthorityRecord, error) {
	profile, err := s.authorities.FindByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	if input.Department != nil {
		profile.Department = *input.Department
	}
	if input.Designation != nil {
		profile.Designation = *input.Designation
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.Name != nil {
		profile.User.Name = *input.Name
	}
	if input.Email != nil {
		profile.User.Email = *input.Email
	}
	if input.ProfilePic != nil {
		profile.User.ProfilePic = *input.ProfilePic
	}
	if input.Password != nil && *input.Password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		profile.User.PasswordHash = string(hash)
	}

	if err := s.authorities.Update(ctx, profile); err != nil {
		return nil, err
	}
	return authorityRecordOf(profile), nil
}

func (s *DirectoryService) DeleteAuthority(ctx context.Context, employeeID string) error {
	profile, err := s.authorities.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := s.authorities.DeleteWithUser(ctx, profile); err != nil {
		return err
	}
	s.logger.Info().Str("employee_id", profile.EmployeeID).Msg("authority account deleted")
	return nil
}

func studentRecordOf(p *domain.StudentProfile) *ports.StudentRecord {
	return &ports.StudentRecord{
		StudentID: p.StudentID,
		Year:      p.Year,
		Branch:    p.Branch,
		Gender:    p.Gender,
		Name:      p.User.Name,
		Email:     p.User.Email,
	}
}

func authorityRecordOf(p *domain.AuthorityProfile) *ports.AuthorityRecord {
	return &ports.AuthorityRecord{
		EmployeeID:  p.EmployeeID,
		Department:  p.Department,
		Designation: p.Designation,
		Gender:      p.Gender,
		Name:        p.User.Name,
		Email:       p.User.Email,
		ProfilePic:  p.User.ProfilePic,
	}
}
