package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/util"
)

func PostSessionSkipRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.POST("/sessions/:id/skip", postSessionSkipHandler(s))
}

func postSessionSkipHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionFromPath(c, s)
		if err != nil {
			return err
		}

		if err := session.SkipDevice(c.Request().Context()); err != nil {
			return api.HTTPErrorFrom(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, session.View().ToTypes())
	}
}
