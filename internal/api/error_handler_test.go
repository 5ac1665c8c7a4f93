package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorEnvelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/grievances", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorEnvelope
	if derr := json.Unmarshal(rec.Body.Bytes(), &body); derr != nil {
		t.Fatalf("response is not the error envelope: %v\n%s", derr, rec.Body.String())
	}
	return rec, body
}

func TestErrorHandlerDomainSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"maintenance mode", domain.ErrMaintenanceMode, http.StatusServiceUnavailable},
		{"registration closed", domain.ErrRegistrationClosed, http.StatusForbidden},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"delete window expired", domain.ErrDeleteWindowExpired, http.StatusBadRequest},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
		{"student not found", domain.ErrStudentNotFound, http.StatusNotFound},
		{"authority not found", domain.ErrAuthorityNotFound, http.StatusNotFound},
		{"grievance not found", domain.ErrGrievanceNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if body.Status != "error" {
				t.Errorf("status = %q, want error", body.Status)
			}
			if body.Message != tt.err.Error() {
				t.Errorf("message = %q, want %q", body.Message, tt.err.Error())
			}
		})
	}
}

func TestErrorHandlerWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("create grievance"), domain.ErrStudentNotFound)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404 for a wrapped sentinel", rec.Code)
	}
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusForbidden, "access forbidden"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("code = %d, want 403", rec.Code)
	}
	if body.Message != "access forbidden" {
		t.Errorf("message = %q, want the HTTPError message", body.Message)
	}
}

func TestErrorHandlerUnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: deadlock detected"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want 500", rec.Code)
	}
	if body.Message != "pq: deadlock detected" {
		t.Errorf("message = %q", body.Message)
	}
}
