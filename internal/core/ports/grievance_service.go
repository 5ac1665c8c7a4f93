package ports

import (
	"context"
	"time"
)

// CreateGrievanceInput files a new complaint on behalf of a student. Image
// is the stored path of an already-saved evidence photo, if any.
type CreateGrievanceInput struct {
	StudentID   string
	Category    string
	Description string
	Image       string
}

// ListGrievancesInput scopes the listing to the caller: students see their
// own records, authorities see records routed to their designation, admins
// see everything.
type ListGrievancesInput struct {
	Role     string
	Username string
}

// UpdateGrievanceInput carries both update paths. The authority path fires
// when Status is non-nil: status and reply are overwritten, the resolution
// image attached, and resolved_at stamped when the new status is Resolved.
// The student path fires when FeedbackStars is non-nil. Both may apply in a
// single request.
type UpdateGrievanceInput struct {
	ID                 uint
	Status             *string
	Reply              string
	ResolvedImage      string
	HandlerDesignation *string
	FeedbackStars      *int
}

// DeleteGrievanceInput identifies the record and the student attempting the
// retraction.
type DeleteGrievanceInput struct {
	ID              uint
	CallerStudentID string
}

// GrievanceRecord is the API view of a complaint, flattening the owning
// student's identifier and display name.
type GrievanceRecord struct {
	ID                        uint       `json:"id"`
	StudentID                 string     `json:"student_id"`
	StudentName               string     `json:"student_name"`
	Category                  string     `json:"category"`
	Description               string     `json:"description"`
	Image                     string     `json:"image,omitempty"`
	ResolvedImage             string     `json:"resolved_image,omitempty"`
	Status                    string     `json:"status"`
	AuthorityReply            string     `json:"authority_reply,omitempty"`
	FeedbackStars             int        `json:"feedback_stars"`
	CurrentHandlerDesignation string     `json:"current_handler_designation"`
	DepartmentCategory        string     `json:"department_category"`
	CreatedAt                 time.Time  `json:"created_at"`
	ResolvedAt                *time.Time `json:"resolved_at,omitempty"`
}

// GrievanceService implements the complaint lifecycle: filing with initial
// routing, role-scoped listing, the two update paths, and the owner- and
// time-gated delete.
type GrievanceService interface {
	Create(ctx context.Context, input CreateGrievanceInput) (*GrievanceRecord, error)
	List(ctx context.Context, input ListGrievancesInput) ([]GrievanceRecord, error)
	Update(ctx context.Context, input UpdateGrievanceInput) (*GrievanceRecord, error)
	Delete(ctx context.Context, input DeleteGrievanceInput) error
}
