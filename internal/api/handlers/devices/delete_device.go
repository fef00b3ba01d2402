package devices

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

func DeleteDeviceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Devices.DELETE("/:handle", deleteDeviceHandler(s))
}

// Unplugs the device. Verifications in flight on it fail as disconnected.
func deleteDeviceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params types.DeleteDeviceRouteParams
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		handle, err := uuid.Parse(params.Handle.String())
		if err != nil {
			return httperrors.ErrBadRequestInvalidHandle
		}

		if err := s.Rack.Unplug(handle); err != nil {
			return api.HTTPErrorFrom(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
