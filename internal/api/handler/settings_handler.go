package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// SettingsHandler reads and updates the global site configuration.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	MaintenanceMode   bool `json:"maintenance_mode" form:"maintenance_mode"`
	AllowRegistration bool `json:"allow_registration" form:"allow_registration"`
	EmailAlerts       bool `json:"email_alerts" form:"email_alerts"`
}

// Get returns the site configuration, creating defaults on first access.
//
// @Summary      Read site settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"settings": settings})
}

// Update replaces the site configuration record.
//
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "New configuration"
// @Success      200   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Router       /settings [post]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.service.Update(c.Request().Context(), domain.SiteSettings{
		MaintenanceMode:   req.MaintenanceMode,
		AllowRegistration: req.AllowRegistration,
		EmailAlerts:       req.EmailAlerts,
	})
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"settings": settings})
}
