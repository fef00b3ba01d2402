package receive

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/currency"
)

func PostCreateSessionRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Receive.POST("/sessions", postCreateSessionHandler(s))
}

// Derives the fresh address of the requested account and opens a receive
// session on the device step. With connectDevice the session moves on to
// the receive step with the current device; the session is closed again if
// no device is connected.
func postCreateSessionHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateReceiveSessionPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Wallet.NewAccount(ctx, wallet.AccountParams{
			CurrencyID: swag.StringValue(body.CurrencyID),
			Mode:       currency.ParseMode(body.DerivationMode),
			Account:    uint32(swag.Int64Value(body.Account)),
			Index:      uint32(swag.Int64Value(body.Index)),
			Name:       body.Name,
			TokenName:  body.TokenName,
		})
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create receive account")
			return api.HTTPErrorFrom(err)
		}

		session, err := s.Sessions.Create(account)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create receive session")
			return err
		}

		log.Info().Str("session_id", session.ID().String()).Str("currency_id", account.CurrencyID).Msg("Receive session created")

		if util.FalseIfNil(body.ConnectDevice) {
			if err := session.ConnectDevice(ctx); err != nil {
				log.Debug().Err(err).Msg("Failed to connect device to new receive session")
				_ = s.Sessions.Close(session.ID())
				return api.HTTPErrorFrom(err)
			}
		}

		return util.ValidateAndReturn(c, http.StatusCreated, session.View().ToTypes())
	}
}
