// Package httpjson holds the request/response helpers shared by the
// entity handlers: strict JSON payload decoding and the uniform error body.
package httpjson

import (
	"encoding/json"
	"errors"

	"github.com/labstack/echo/v4"
)

// DecodeStrict decodes the JSON request body into v. Unknown fields and
// trailing data are rejected, so a payload either matches the expected
// shape exactly or fails.
func DecodeStrict(c echo.Context, v interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON payload")
	}
	return nil
}

// Error writes the uniform error body used by every handler.
func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}
