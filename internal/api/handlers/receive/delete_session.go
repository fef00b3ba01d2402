package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
)

func DeleteSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.DELETE("/sessions/:id", deleteSessionHandler(s))
}

func deleteSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := sessionFromPath(c, s)
		if err != nil {
			return err
		}

		if err := s.Sessions.Close(session.ID()); err != nil {
			return api.HTTPErrorFrom(err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}
