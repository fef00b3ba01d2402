package devices

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/device"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

func GetDevicesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Devices.GET("", getDevicesHandler(s))
}

func getDevicesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		live := s.Hub.Current()

		res := &types.GetDevicesResponse{Data: []*types.Device{}}
		for _, dev := range s.Hub.List() {
			isLive := live.IsSome() && device.SameConnection(live.UnsafeFromSome(), dev)
			res.Data = append(res.Data, dev.ToTypes(isLive))
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
