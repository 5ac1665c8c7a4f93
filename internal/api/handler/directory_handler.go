package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// DirectoryHandler exposes the admin CRUD over student and authority
// profiles.
type DirectoryHandler struct {
	directory ports.DirectoryService
	images    ports.ImageStore
}

func NewDirectoryHandler(directory ports.DirectoryService, images ports.ImageStore) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, images: images}
}

type updateStudentRequest struct {
	Year     *string `json:"year" form:"year"`
	Branch   *string `json:"branch" form:"branch"`
	Gender   *string `json:"gender" form:"gender"`
	Name     *string `json:"name" form:"name"`
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	Password *string `json:"password" form:"password"`
}

type updateAuthorityRequest struct {
	Department  *string `json:"department" form:"department"`
	Designation *string `json:"designation" form:"designation"`
	Gender      *string `json:"gender" form:"gender"`
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email" validate:"omitempty,email"`
	Password    *string `json:"password" form:"password"`
}

// ListStudents returns all student directory records.
//
// @Summary      List students
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /students [get]
func (h *DirectoryHandler) ListStudents(c echo.Context) error {
	records, err := h.directory.ListStudents(c.Request().Context())
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"students": records})
}

// UpdateStudent applies a partial edit to a student and its linked user.
//
// @Summary      Update a student
// @Tags         directory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        student_id  path  string  true  "Student identifier"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /students/{student_id} [put]
func (h *DirectoryHandler) UpdateStudent(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.directory.UpdateStudent(c.Request().Context(), ports.UpdateStudentInput{
		StudentID: c.Param("student_id"),
		Year:      req.Year,
		Branch:    req.Branch,
		Gender:    req.Gender,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"student": record})
}

// DeleteStudent removes a student profile and its owning user.
//
// @Summary      Delete a student
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        student_id  path  string  true  "Student identifier"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /students/{student_id} [delete]
func (h *DirectoryHandler) DeleteStudent(c echo.Context) error {
	if err := h.directory.DeleteStudent(c.Request().Context(), c.Param("student_id")); err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"message": "student deleted"})
}

// ListAuthorities returns all authority directory records.
//
// @Summary      List authorities
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /authorities [get]
func (h *DirectoryHandler) ListAuthorities(c echo.Context) error {
	records, err := h.directory.ListAuthorities(c.Request().Context())
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"authorities": records})
}

// UpdateAuthority applies a partial edit, with an optional multipart
// "profile_pic" replacement.
//
// @Summary      Update an authority
// @Tags         directory
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "Employee identifier"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /authorities/{employee_id} [put]
func (h *DirectoryHandler) UpdateAuthority(c echo.Context) error {
	var req updateAuthorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateAuthorityInput{
		EmployeeID:  c.Param("employee_id"),
		Department:  req.Department,
		Designation: req.Designation,
		Gender:      req.Gender,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
	}

	picPath, err := saveUpload(c, "profile_pic", "profile_pics", h.images)
	if err != nil {
		return err
	}
	if picPath != "" {
		input.ProfilePic = &picPath
	}

	record, err := h.directory.UpdateAuthority(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"authority": record})
}

// DeleteAuthority removes an authority profile and its owning user.
//
// @Summary      Delete an authority
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "Employee identifier"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /authorities/{employee_id} [delete]
func (h *DirectoryHandler) DeleteAuthority(c echo.Context) error {
	if err := h.directory.DeleteAuthority(c.Request().Context(), c.Param("employee_id")); err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"message": "authority deleted"})
}
