package common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Returns an human readable string about the current service status.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var str strings.Builder
		fmt.Fprintln(&str, "Ready:", s.Ready())

		keyring := "missing"
		if s.Seed != nil && s.Seed.IsInitialized() {
			keyring = "loaded"
		}
		fmt.Fprintln(&str, "Keyring:", keyring)

		if s.Hub != nil {
			fmt.Fprintln(&str, "Devices connected:", s.Hub.Count())
		}
		if s.Sessions != nil {
			fmt.Fprintln(&str, "Sessions open:", s.Sessions.Count())
		}

		if !s.Ready() {
			return c.String(StatusNotReady, str.String())
		}

		return c.String(http.StatusOK, str.String())
	}
}
