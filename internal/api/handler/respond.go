package handler

import "github.com/labstack/echo/v4"

// envelope renders a success body: the documented {"status":"success"}
// marker merged with the payload fields.
func envelope(c echo.Context, code int, payload map[string]any) error {
	body := make(map[string]any, len(payload)+1)
	body["status"] = "success"
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(code, body)
}
