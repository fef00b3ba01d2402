package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig renders every error returned by a handler as
// a types.PublicHTTPError.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code    = http.StatusInternalServerError
			payload interface{}
		)

		var hve *httperrors.HTTPValidationError
		var he *httperrors.HTTPError
		var ee *echo.HTTPError

		switch {
		case errors.As(err, &hve):
			code = int(*hve.Code)
			payload = hve
		case errors.As(err, &he):
			code = int(*he.Code)
			payload = he
		case errors.As(err, &ee):
			code = ee.Code
			payload = httperrors.NewFromEcho(ee)
		default:
			internal := httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
			if !config.HideInternalServerErrorDetails {
				internal.Detail = err.Error()
			}
			payload = internal
		}

		log := util.LogFromContext(c.Request().Context())
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			log.Debug().Err(err).Int("status", code).Msg("Request rejected")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, payload)
		}
		if err != nil {
			log.Warn().Err(err).Msg("Failed to write error response")
		}
	}
}
