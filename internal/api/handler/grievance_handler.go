package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/api/metrics"
	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// GrievanceHandler exposes the complaint lifecycle endpoints.
type GrievanceHandler struct {
	service ports.GrievanceService
	images  ports.ImageStore
}

func NewGrievanceHandler(service ports.GrievanceService, images ports.ImageStore) *GrievanceHandler {
	return &GrievanceHandler{service: service, images: images}
}

type createGrievanceRequest struct {
	StudentID   string `json:"student_id" form:"student_id" validate:"required"`
	Category    string `json:"category" form:"category" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
}

type updateGrievanceRequest struct {
	Status             *string `json:"status" form:"status"`
	Reply              string  `json:"reply" form:"reply"`
	HandlerDesignation *string `json:"handler_designation" form:"handler_designation"`
	FeedbackStars      *int    `json:"feedback_stars" form:"feedback_stars" validate:"omitempty,min=0,max=5"`
}

// Create files a new grievance, with an optional evidence image under the
// multipart "image" field.
//
// @Summary      File a grievance
// @Tags         grievances
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        student_id   formData  string  true   "Owning student identifier"
// @Param        category     formData  string  true   "Category, e.g. 'Hostel - I1 - Electrical'"
// @Param        description  formData  string  true   "Complaint text"
// @Param        image        formData  file    false  "Evidence image"
// @Success      201  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /grievances [post]
func (h *GrievanceHandler) Create(c echo.Context) error {
	var req createGrievanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imagePath, err := saveUpload(c, "image", "grievance_imgs", h.images)
	if err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateGrievanceInput{
		StudentID:   req.StudentID,
		Category:    req.Category,
		Description: req.Description,
		Image:       imagePath,
	})
	if err != nil {
		return err
	}

	metrics.GrievancesFiledTotal.WithLabelValues(record.DepartmentCategory).Inc()
	return envelope(c, http.StatusCreated, map[string]any{"grievance": record})
}

// List returns grievances scoped to the authenticated caller.
//
// @Summary      List grievances
// @Tags         grievances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /grievances [get]
func (h *GrievanceHandler) List(c echo.Context) error {
	username, role, err := principal(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), ports.ListGrievancesInput{
		Role:     role,
		Username: username,
	})
	if err != nil {
		return err
	}

	return envelope(c, http.StatusOK, map[string]any{"grievances": records})
}

// Update applies the authority path (status, reply, resolution image,
// handler reassignment) and/or the student path (feedback stars).
//
// @Summary      Update a grievance
// @Tags         grievances
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id              path      int     true   "Grievance id"
// @Param        status          formData  string  false  "New status, written verbatim"
// @Param        reply           formData  string  false  "Authority reply"
// @Param        resolved_image  formData  file    false  "Resolution image"
// @Param        feedback_stars  formData  int     false  "Student feedback (0-5)"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /grievances/{id} [patch]
func (h *GrievanceHandler) Update(c echo.Context) error {
	id, err := grievanceID(c)
	if err != nil {
		return err
	}

	var req updateGrievanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var resolvedPath string
	if req.Status != nil {
		resolvedPath, err = saveUpload(c, "resolved_image", "resolved_imgs", h.images)
		if err != nil {
			return err
		}
	}

	record, err := h.service.Update(c.Request().Context(), ports.UpdateGrievanceInput{
		ID:                 id,
		Status:             req.Status,
		Reply:              req.Reply,
		ResolvedImage:      resolvedPath,
		HandlerDesignation: req.HandlerDesignation,
		FeedbackStars:      req.FeedbackStars,
	})
	if err != nil {
		return err
	}

	if req.Status != nil && domain.GrievanceStatus(*req.Status) == domain.StatusResolved {
		metrics.GrievancesResolvedTotal.Inc()
	}
	return envelope(c, http.StatusOK, map[string]any{"grievance": record})
}

// Delete retracts a grievance; only the owner, only within the window.
//
// @Summary      Delete a grievance
// @Tags         grievances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Grievance id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /grievances/{id} [delete]
func (h *GrievanceHandler) Delete(c echo.Context) error {
	id, err := grievanceID(c)
	if err != nil {
		return err
	}

	username, _, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ports.DeleteGrievanceInput{
		ID:              id,
		CallerStudentID: username,
	}); err != nil {
		return err
	}

	return envelope(c, http.StatusOK, map[string]any{"message": "grievance deleted"})
}

func grievanceID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid grievance id")
	}
	return uint(id), nil
}
