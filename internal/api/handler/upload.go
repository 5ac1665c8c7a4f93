package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// saveUpload stores an optional multipart file and returns its path, or ""
// when the request carries no file under that field.
func saveUpload(c echo.Context, field, kind string, store ports.ImageStore) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Missing file and non-multipart requests both mean "no image".
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return store.Save(kind, fh.Filename, src)
}
