package currencies_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/test"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/wallet/currency"
)

func TestGetCurrencies(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		s.Statuses.Set([]currency.Status{{ID: "ethereum", Message: "Network congestion", Warning: true}})

		res := test.PerformRequest(t, s, "GET", "/api/v1/currencies", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var response types.GetCurrenciesResponse
		test.ParseResponseAndValidate(t, res, &response)

		byID := make(map[string]*types.Currency, len(response.Data))
		for _, c := range response.Data {
			byID[*c.ID] = c
		}

		require.Contains(t, byID, "bitcoin")
		assert.Equal(t, "BTC", *byID["bitcoin"].Ticker)
		assert.Equal(t, []string{"", "segwit", "native_segwit"}, byID["bitcoin"].Modes)
		assert.Nil(t, byID["bitcoin"].Status)

		require.Contains(t, byID, "ethereum")
		require.NotNil(t, byID["ethereum"].Status)
		assert.Equal(t, "Network congestion", *byID["ethereum"].Status.Message)
		assert.True(t, *byID["ethereum"].Status.Warning)
	})
}
