package domain

import "time"

// GrievanceStatus is the lifecycle state of a complaint. Authorities write
// the value verbatim; the constants below exist for the code paths that
// branch on them, not as a validation allowlist.
type GrievanceStatus string

const (
	StatusPending   GrievanceStatus = "Pending"
	StatusResolved  GrievanceStatus = "Resolved"
	StatusEscalated GrievanceStatus = "Escalated"
)

// Grievance is the core aggregate: a complaint filed by a student, routed to
// a handler designation and worked by authorities until resolved.
type Grievance struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	StudentProfileID uint            `json:"-" gorm:"index;not null"`
	Student          StudentProfile  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Category         string          `json:"category" gorm:"size:255;not null"`
	Description      string          `json:"description" gorm:"type:text"`
	Image            string          `json:"image,omitempty" gorm:"size:255"`
	ResolvedImage    string          `json:"resolved_image,omitempty" gorm:"size:255"`
	Status           GrievanceStatus `json:"status" gorm:"size:20;default:Pending"`
	AuthorityReply   string          `json:"authority_reply,omitempty" gorm:"type:text"`
	FeedbackStars    int             `json:"feedback_stars" gorm:"not null;default:0"`

	// CurrentHandlerDesignation is the mutable routing pointer: initialised
	// from the department table at creation, reassignable by an authority.
	CurrentHandlerDesignation string `json:"current_handler_designation" gorm:"size:100"`
	// DepartmentCategory is derived from Category at creation and never
	// changes afterwards.
	DepartmentCategory string `json:"department_category" gorm:"size:50"`

	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// DeleteWindow is how long after filing a student may retract a grievance.
// The boundary is inclusive: a delete at exactly created_at+DeleteWindow
// still succeeds.
const DeleteWindow = 300 * time.Second

// DeletableAt reports whether the grievance can still be retracted at now.
func (g *Grievance) DeletableAt(now time.Time) bool {
	return now.Sub(g.CreatedAt) <= DeleteWindow
}
