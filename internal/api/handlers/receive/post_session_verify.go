package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/util"
)

func PostSessionVerifyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.POST("/sessions/:id/verify", postSessionVerifyHandler(s))
}

// Asks for a new verification. If the live device is not the one the step
// was entered with, the session goes back to the device step.
func postSessionVerifyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionFromPath(c, s)
		if err != nil {
			return err
		}

		if err := session.Verify(c.Request().Context()); err != nil {
			return api.HTTPErrorFrom(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, session.View().ToTypes())
	}
}
