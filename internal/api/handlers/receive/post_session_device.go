package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/util"
)

func PostSessionDeviceRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.POST("/sessions/:id/device", postSessionDeviceHandler(s))
}

// Completes the device step with the live device. Verification starts right
// away; poll the session for its outcome.
func postSessionDeviceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionFromPath(c, s)
		if err != nil {
			return err
		}

		if err := session.ConnectDevice(c.Request().Context()); err != nil {
			return api.HTTPErrorFrom(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, session.View().ToTypes())
	}
}
