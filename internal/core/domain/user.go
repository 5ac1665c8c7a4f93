package domain

import "time"

const (
	RoleStudent   = "student"
	RoleAuthority = "authority"
	RoleAdmin     = "admin"
)

// User holds the credentials and shared profile attributes for every actor
// in the system. Student and authority records each link to exactly one User.
type User struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Username          string     `json:"username" gorm:"size:150;uniqueIndex;not null"`
	PasswordHash      string     `json:"-" gorm:"size:255;not null"`
	Role              string     `json:"role" gorm:"size:30"`
	Name              string     `json:"name" gorm:"size:150"`
	Email             string     `json:"email" gorm:"size:254"`
	ProfilePic        string     `json:"profile_pic,omitempty" gorm:"size:255"`
	IsSuperuser       bool       `json:"-" gorm:"not null;default:false"`
	PasswordChangedAt *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// EffectiveRole resolves the role used for dispatch: the superuser flag
// overrides everything, and a missing role tag defaults to student.
func (u *User) EffectiveRole() string {
	if u.IsSuperuser {
		return RoleAdmin
	}
	if u.Role == "" {
		return RoleStudent
	}
	return u.Role
}

// StudentProfile is the student directory record. StudentID is stored
// upper-cased and doubles as the login username.
type StudentProfile struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"-" gorm:"uniqueIndex;not null"`
	User      User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	StudentID string `json:"student_id" gorm:"size:15;uniqueIndex;not null"`
	Year      string `json:"year" gorm:"size:10"`
	Branch    string `json:"branch,omitempty" gorm:"size:100"`
	Gender    string `json:"gender" gorm:"size:10"`
}

// AuthorityProfile is the staff directory record. Designation is the key
// grievances are routed against.
type AuthorityProfile struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	UserID     uint   `json:"-" gorm:"uniqueIndex;not null"`
	User       User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	EmployeeID string `json:"employee_id" gorm:"size:15;uniqueIndex;not null"`
	Department string `json:"department" gorm:"size:50"`
	Designation string `json:"designation" gorm:"size:50"`
	Gender     string `json:"gender" gorm:"size:10"`
}
