package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/util"
)

func GetSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.GET("/sessions/:id", getSessionHandler(s))
}

func getSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionFromPath(c, s)
		if err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, session.View().ToTypes())
	}
}
