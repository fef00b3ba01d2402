package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/handlers/common"
	"github/chapool/go-receive/internal/api/handlers/currencies"
	"github/chapool/go-receive/internal/api/handlers/devices"
	"github/chapool/go-receive/internal/api/handlers/receive"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		currencies.GetCurrenciesRoute(s),
		devices.DeleteDeviceRoute(s),
		devices.GetDevicesRoute(s),
		devices.PostPlugDeviceRoute(s),
		receive.DeleteSessionRoute(s),
		receive.GetSessionRoute(s),
		receive.GetSessionsRoute(s),
		receive.PostCreateSessionRoute(s),
		receive.PostSessionDeviceRoute(s),
		receive.PostSessionSkipRoute(s),
		receive.PostSessionVerifyRoute(s),
	}
}
