package service

// In-memory stubs shared by the service tests. Each mirrors the filtering
// its real repository performs so the services are exercised against the
// same contracts.

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// --- users ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by username, case-sensitive
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	clone := *user
	r.users[user.Username] = &clone
	return nil
}

// --- students ---

type stubStudentRepo struct {
	byID      map[string]*domain.StudentProfile // keyed by canonical StudentID
	nextID    uint
	createErr error
	deleted   []string
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{byID: make(map[string]*domain.StudentProfile)}
}

func (r *stubStudentRepo) CreateWithUser(_ context.Context, user *domain.User, profile *domain.StudentProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byID[profile.StudentID]; exists {
		return domain.ErrUserExists
	}
	r.nextID++
	profile.ID = r.nextID
	profile.User = *user
	clone := *profile
	r.byID[profile.StudentID] = &clone
	return nil
}

func (r *stubStudentRepo) FindByStudentID(_ context.Context, studentID string) (*domain.StudentProfile, error) {
	p, ok := r.byID[studentID]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubStudentRepo) List(_ context.Context) ([]*domain.StudentProfile, error) {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.StudentProfile, 0, len(ids))
	for _, id := range ids {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubStudentRepo) Update(_ context.Context, profile *domain.StudentProfile) error {
	clone := *profile
	r.byID[profile.StudentID] = &clone
	return nil
}

func (r *stubStudentRepo) DeleteWithUser(_ context.Context, profile *domain.StudentProfile) error {
	delete(r.byID, profile.StudentID)
	r.deleted = append(r.deleted, profile.StudentID)
	return nil
}

func (r *stubStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

// seedStudent inserts a ready-made profile with a linked user.
func (r *stubStudentRepo) seedStudent(studentID, name, email string) *domain.StudentProfile {
	r.nextID++
	p := &domain.StudentProfile{
		ID:        r.nextID,
		StudentID: studentID,
		Year:      "E4",
		Gender:    "F",
		User: domain.User{
			ID:       r.nextID,
			Username: studentID,
			Name:     name,
			Email:    email,
			Role:     domain.RoleStudent,
		},
	}
	r.byID[studentID] = p
	return p
}

// --- authorities ---

type stubAuthorityRepo struct {
	byEmployee map[string]*domain.AuthorityProfile
	nextID     uint
	deleted    []string
}

func newStubAuthorityRepo() *stubAuthorityRepo {
	return &stubAuthorityRepo{byEmployee: make(map[string]*domain.AuthorityProfile)}
}

func (r *stubAuthorityRepo) CreateWithUser(_ context.Context, user *domain.User, profile *domain.AuthorityProfile) error {
	if _, exists := r.byEmployee[profile.EmployeeID]; exists {
		return domain.ErrUserExists
	}
	r.nextID++
	profile.ID = r.nextID
	profile.User = *user
	clone := *profile
	r.byEmployee[profile.EmployeeID] = &clone
	return nil
}

func (r *stubAuthorityRepo) FindByEmployeeID(_ context.Context, employeeID string) (*domain.AuthorityProfile, error) {
	p, ok := r.byEmployee[employeeID]
	if !ok {
		return nil, domain.ErrAuthorityNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubAuthorityRepo) FindByUsername(_ context.Context, username string) (*domain.AuthorityProfile, error) {
	for _, p := range r.byEmployee {
		if p.User.Username == username {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrAuthorityNotFound
}

func (r *stubAuthorityRepo) List(_ context.Context) ([]*domain.AuthorityProfile, error) {
	ids := make([]string, 0, len(r.byEmployee))
	for id := range r.byEmployee {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.AuthorityProfile, 0, len(ids))
	for _, id := range ids {
		clone := *r.byEmployee[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAuthorityRepo) Update(_ context.Context, profile *domain.AuthorityProfile) error {
	clone := *profile
	r.byEmployee[profile.EmployeeID] = &clone
	return nil
}

func (r *stubAuthorityRepo) DeleteWithUser(_ context.Context, profile *domain.AuthorityProfile) error {
	delete(r.byEmployee, profile.EmployeeID)
	r.deleted = append(r.deleted, profile.EmployeeID)
	return nil
}

func (r *stubAuthorityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byEmployee)), nil
}

func (r *stubAuthorityRepo) seedAuthority(employeeID, username, designation string) *domain.AuthorityProfile {
	r.nextID++
	p := &domain.AuthorityProfile{
		ID:          r.nextID,
		EmployeeID:  employeeID,
		Department:  "Hostel",
		Designation: designation,
		User: domain.User{
			ID:       100 + r.nextID,
			Username: username,
			Role:     domain.RoleAuthority,
		},
	}
	r.byEmployee[employeeID] = p
	return p
}

// --- grievances ---

type stubGrievanceRepo struct {
	byID   map[uint]*domain.Grievance
	nextID uint
}

func newStubGrievanceRepo() *stubGrievanceRepo {
	return &stubGrievanceRepo{byID: make(map[uint]*domain.Grievance)}
}

func (r *stubGrievanceRepo) Create(_ context.Context, g *domain.Grievance) error {
	r.nextID++
	g.ID = r.nextID
	clone := *g
	r.byID[g.ID] = &clone
	return nil
}

func (r *stubGrievanceRepo) FindByID(_ context.Context, id uint) (*domain.Grievance, error) {
	g, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrGrievanceNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGrievanceRepo) list(keep func(*domain.Grievance) bool) []*domain.Grievance {
	var out []*domain.Grievance
	for _, g := range r.byID {
		if keep(g) {
			clone := *g
			out = append(out, &clone)
		}
	}
	// Newest first, as the real repository orders.
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *stubGrievanceRepo) ListAll(_ context.Context) ([]*domain.Grievance, error) {
	return r.list(func(*domain.Grievance) bool { return true }), nil
}

func (r *stubGrievanceRepo) ListByStudentProfile(_ context.Context, profileID uint) ([]*domain.Grievance, error) {
	return r.list(func(g *domain.Grievance) bool { return g.StudentProfileID == profileID }), nil
}

func (r *stubGrievanceRepo) ListByHandler(_ context.Context, designation string) ([]*domain.Grievance, error) {
	return r.list(func(g *domain.Grievance) bool { return g.CurrentHandlerDesignation == designation }), nil
}

func (r *stubGrievanceRepo) Update(_ context.Context, g *domain.Grievance) error {
	if _, ok := r.byID[g.ID]; !ok {
		return domain.ErrGrievanceNotFound
	}
	clone := *g
	r.byID[g.ID] = &clone
	return nil
}

func (r *stubGrievanceRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrGrievanceNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubGrievanceRepo) CountByStatus(_ context.Context) (total, pending, resolved, escalated int64, err error) {
	for _, g := range r.byID {
		total++
		switch g.Status {
		case domain.StatusPending:
			pending++
		case domain.StatusResolved:
			resolved++
		case domain.StatusEscalated:
			escalated++
		}
	}
	return
}

// --- settings ---

type stubSettingsRepo struct {
	settings domain.SiteSettings
	getErr   error
}

func newStubSettingsRepo() *stubSettingsRepo {
	return &stubSettingsRepo{settings: domain.DefaultSiteSettings()}
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.SiteSettings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	clone := r.settings
	return &clone, nil
}

func (r *stubSettingsRepo) Update(_ context.Context, s *domain.SiteSettings) error {
	r.settings = *s
	return nil
}

// --- tokens ---

type stubTokenStore struct {
	byUser map[uint]string
	issued int
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{byUser: make(map[uint]string)}
}

func (s *stubTokenStore) Issue(_ context.Context, p ports.Principal) (string, error) {
	if tok, ok := s.byUser[p.UserID]; ok {
		return tok, nil
	}
	s.issued++
	tok := fmt.Sprintf("tok-%d-%d", p.UserID, s.issued)
	s.byUser[p.UserID] = tok
	return tok, nil
}

func (s *stubTokenStore) Resolve(_ context.Context, token string) (*ports.Principal, error) {
	for userID, tok := range s.byUser {
		if tok == token {
			return &ports.Principal{UserID: userID}, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *stubTokenStore) Revoke(_ context.Context, userID uint) error {
	delete(s.byUser, userID)
	return nil
}

// --- notifier ---

type stubNotifier struct {
	sent []ports.StatusNotification
}

func (n *stubNotifier) Notify(notification ports.StatusNotification) {
	n.sent = append(n.sent, notification)
}
