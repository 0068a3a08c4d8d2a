package http

import (
	"errors"
	"net/http"
	"strings"

	"purchasing/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewErrorHandler renders every error returned by a handler or middleware as
// an Error body. Domain errors are mapped by kind; 5xx responses are logged.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := statusAndMessage(err)

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		} else if strings.HasSuffix(c.Path(), "/export") {
			logger.Warn("Order export failed", zap.String("path", c.Request().URL.Path), zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, Error{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}

func statusAndMessage(err error) (int, string) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if message, ok := httpErr.Message.(string); ok {
			return httpErr.Code, message
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return http.StatusBadRequest, requestErr.Error()
	}

	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrRepository):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
