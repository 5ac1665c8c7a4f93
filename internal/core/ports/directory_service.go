package ports

import "context"

// RegisterStudentInput carries everything needed to create a student account.
// The student identifier is canonicalized to upper case before storage and
// doubles as the login username.
type RegisterStudentInput struct {
	StudentID string
	Password  string
	Name      string
	Email     string
	Year      string
	Branch    string
	Gender    string
}

// RegisterAuthorityInput mirrors RegisterStudentInput for staff accounts.
// ProfilePic is the stored path of an already-saved image, if any.
type RegisterAuthorityInput struct {
	EmployeeID  string
	Password    string
	Name        string
	Email       string
	Department  string
	Designation string
	Gender      string
	ProfilePic  string
}

// StudentRecord is the directory view of a student, flattening the linked
// user's name and email.
type StudentRecord struct {
	StudentID string `json:"student_id"`
	Year      string `json:"year"`
	Branch    string `json:"branch,omitempty"`
	Gender    string `json:"gender"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// AuthorityRecord is the directory view of an authority.
type AuthorityRecord struct {
	EmployeeID  string `json:"employee_id"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Gender      string `json:"gender"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProfilePic  string `json:"profile_pic,omitempty"`
}

// UpdateStudentInput applies a partial edit: nil fields are left untouched.
// Password, when set, is re-hashed before storage.
type UpdateStudentInput struct {
	StudentID string
	Year      *string
	Branch    *string
	Gender    *string
	Name      *string
	Email     *string
	Password  *string
}

// UpdateAuthorityInput is the staff counterpart of UpdateStudentInput.
type UpdateAuthorityInput struct {
	EmployeeID  string
	Department  *string
	Designation *string
	Gender      *string
	Name        *string
	Email       *string
	Password    *string
	ProfilePic  *string
}

// DirectoryService manages registration and profile CRUD for both account
// kinds. Registration is gated by the site's allow_registration toggle and
// creates user and profile as one transactional unit.
type DirectoryService interface {
	RegisterStudent(ctx context.Context, input RegisterStudentInput) (*StudentRecord, error)
	RegisterAuthority(ctx context.Context, input RegisterAuthorityInput) (*AuthorityRecord, error)

	ListStudents(ctx context.Context) ([]StudentRecord, error)
	UpdateStudent(ctx context.Context, input UpdateStudentInput) (*StudentRecord, error)
	// DeleteStudent removes the profile and its owning user in one
	// transaction; owned grievances go with the profile.
	DeleteStudent(ctx context.Context, studentID string) error

	ListAuthorities(ctx context.Context) ([]AuthorityRecord, error)
	UpdateAuthority(ctx context.Context, input UpdateAuthorityInput) (*AuthorityRecord, error)
	DeleteAuthority(ctx context.Context, employeeID string) error
}
