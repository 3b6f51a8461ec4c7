package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"go.uber.org/zap"
)

const (
	INVALID_REQUEST       = "invalid request"
	INTERNAL_SERVER_ERROR = "Internal server error"
)

// HTTPErrorHandler renders every error as {"message": ...}. Details of 5xx
// failures are logged and never sent to the client.
func HTTPErrorHandler(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := INTERNAL_SERVER_ERROR

		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.Code
			if code < http.StatusInternalServerError {
				message = appErr.Message
			}
		case errors.As(err, &httpErr):
			code = httpErr.Code
			if code < http.StatusInternalServerError {
				message = fmt.Sprint(httpErr.Message)
			}
		}

		if code >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, echo.Map{"message": message})
		}
		if writeErr != nil {
			log.Warnw("error writing error response", "error", writeErr)
		}
	}
}
