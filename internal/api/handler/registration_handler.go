package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// RegistrationHandler creates student and authority accounts.
type RegistrationHandler struct {
	directory ports.DirectoryService
	images    ports.ImageStore
}

func NewRegistrationHandler(directory ports.DirectoryService, images ports.ImageStore) *RegistrationHandler {
	return &RegistrationHandler{directory: directory, images: images}
}

type registerStudentRequest struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required,min=4"`
	Name      string `json:"name" form:"name" validate:"required"`
	Email     string `json:"email" form:"email" validate:"omitempty,email"`
	Year      string `json:"year" form:"year"`
	Branch    string `json:"branch" form:"branch"`
	Gender    string `json:"gender" form:"gender"`
}

type registerAuthorityRequest struct {
	EmployeeID  string `json:"employee_id" form:"employee_id" validate:"required"`
	Password    string `json:"password" form:"password" validate:"required,min=4"`
	Name        string `json:"name" form:"name" validate:"required"`
	Email       string `json:"email" form:"email" validate:"omitempty,email"`
	Department  string `json:"department" form:"department" validate:"required"`
	Designation string `json:"designation" form:"designation" validate:"required"`
	Gender      string `json:"gender" form:"gender"`
}

// RegisterStudent creates a student account.
//
// @Summary      Register a student
// @Tags         registration
// @Accept       json
// @Produce      json
// @Param        body  body      registerStudentRequest  true  "Student details"
// @Success      201   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register-student [post]
func (h *RegistrationHandler) RegisterStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.RegisterStudent(c.Request().Context(), ports.RegisterStudentInput{
		StudentID: req.StudentID,
		Password:  req.Password,
		Name:      req.Name,
		Email:     req.Email,
		Year:      req.Year,
		Branch:    req.Branch,
		Gender:    req.Gender,
	})
	if err != nil {
		return err
	}

	return envelope(c, http.StatusCreated, map[string]any{"student": record})
}

// RegisterAuthority creates a staff account, with an optional multipart
// profile image under the "profile_pic" field.
//
// @Summary      Register an authority
// @Tags         registration
// @Accept       mpfd
// @Produce      json
// @Param        employee_id  formData  string  true   "Employee identifier"
// @Param        profile_pic  formData  file    false  "Profile image"
// @Success      201   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register-authority [post]
func (h *RegistrationHandler) RegisterAuthority(c echo.Context) error {
	var req registerAuthorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picPath, err := saveUpload(c, "profile_pic", "profile_pics", h.images)
	if err != nil {
		return err
	}

	record, err := h.directory.RegisterAuthority(c.Request().Context(), ports.RegisterAuthorityInput{
		EmployeeID:  req.EmployeeID,
		Password:    req.Password,
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Designation: req.Designation,
		Gender:      req.Gender,
		ProfilePic:  picPath,
	})
	if err != nil {
		return err
	}

	return envelope(c, http.StatusCreated, map[string]any{"authority": record})
}
