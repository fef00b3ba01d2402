package flow

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/strfmt/conv"
	"github.com/go-openapi/swag"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/wallet/currency"
)

func (v View) ToTypes() *types.ReceiveSession {
	res := &types.ReceiveSession{
		ID: conv.UUID4(strfmt.UUID4(v.ID.String())),
		Account: &types.ReceiveAccount{
			CurrencyID:       swag.String(v.Account.CurrencyID),
			DerivationMode:   swag.String(v.Account.DerivationMode),
			FreshAddress:     swag.String(v.Account.FreshAddress),
			FreshAddressPath: swag.String(v.Account.FreshAddressPath),
			Name:             swag.String(v.Account.Name),
			TokenName:        v.Account.TokenName,
		},
		Step:      swag.String(string(v.Step)),
		Skipped:   swag.Bool(v.Skipped),
		Status:    swag.String(v.Status.String()),
		State:     swag.String(v.State.String()),
		Pending:   swag.Bool(v.Pending),
		Advanced:  swag.Bool(v.Advanced),
		Closed:    swag.Bool(v.Closed),
		CreatedAt: conv.DateTime(strfmt.DateTime(v.CreatedAt)),
		UpdatedAt: conv.DateTime(strfmt.DateTime(v.UpdatedAt)),
	}

	if v.Device != nil {
		res.DeviceHandle = strfmt.UUID4(v.Device.Handle.String())
	}

	if v.Error != nil {
		res.Error = &types.VerificationError{
			Kind:        swag.String(v.Error.Kind.String()),
			AccountName: v.Error.AccountName,
			Message:     swag.String(v.Error.Error()),
		}
	}

	v.Alert.WhenSome(func(st currency.Status) {
		res.Alert = currency.StatusToTypes(st)
	})

	return res
}
