package receive

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

func GetSessionsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.GET("/sessions", getSessionsHandler(s))
}

func getSessionsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		res := &types.GetReceiveSessionsResponse{Data: []*types.ReceiveSession{}}
		for _, session := range s.Sessions.List() {
			res.Data = append(res.Data, session.View().ToTypes())
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
