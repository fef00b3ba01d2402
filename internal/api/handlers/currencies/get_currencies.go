package currencies

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet/currency"
)

func GetCurrenciesRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Currencies.GET("", getCurrenciesHandler(s))
}

func getCurrenciesHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		res := &types.GetCurrenciesResponse{Data: []*types.Currency{}}

		for _, cur := range currency.All() {
			item := cur.ToTypes()
			if st, ok := s.Statuses.Lookup(cur.ID); ok {
				item.Status = currency.StatusToTypes(st)
			}
			res.Data = append(res.Data, item)
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
