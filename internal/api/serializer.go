package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictJSONSerializer 與 echo.DefaultJSONSerializer 相同，但拒絕未知欄位
// swagger:ignore
type StrictJSONSerializer struct {
	echo.DefaultJSONSerializer
}

func (StrictJSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(i)

	var ute *json.UnmarshalTypeError
	var se *json.SyntaxError
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case errors.As(err, &ute):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a %s", ute.Field, ute.Type)).SetInternal(err)
	case errors.As(err, &se):
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("malformed JSON at offset %d", se.Offset)).SetInternal(err)
	default:
		// 例如 DisallowUnknownFields 的 `json: unknown field "x"`
		return echo.NewHTTPError(http.StatusBadRequest, strings.TrimPrefix(err.Error(), "json: ")).SetInternal(err)
	}
}
