package devices

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

func PostPlugDeviceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Devices.POST("", postPlugDeviceHandler(s))
}

// Plugs an emulated device of the given profile. The new connection becomes
// the live device.
func postPlugDeviceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostPlugDevicePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		dev, err := s.Rack.Plug(swag.StringValue(body.Profile))
		if err != nil {
			log.Debug().Err(err).Str("profile", swag.StringValue(body.Profile)).Msg("Failed to plug device")
			return api.HTTPErrorFrom(err)
		}

		return util.ValidateAndReturn(c, http.StatusCreated, dev.ToTypes(true))
	}
}
