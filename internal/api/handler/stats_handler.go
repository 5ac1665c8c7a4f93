package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Dashboard returns aggregate counts and the resolution percentage.
//
// @Summary      Dashboard statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /stats [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return envelope(c, http.StatusOK, map[string]any{"stats": stats})
}
