package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// maxChildIndex is the largest non-hardened BIP32 child index.
const maxChildIndex = 1<<31 - 1

const (

	// ReceiveSessionStepDevice captures enum value "device"
	ReceiveSessionStepDevice string = "device"

	// ReceiveSessionStepReceive captures enum value "receive"
	ReceiveSessionStepReceive string = "receive"

	// ReceiveSessionStatusUnset captures enum value "unset"
	ReceiveSessionStatusUnset string = "unset"

	// ReceiveSessionStatusVerified captures enum value "verified"
	ReceiveSessionStatusVerified string = "verified"

	// ReceiveSessionStatusRejected captures enum value "rejected"
	ReceiveSessionStatusRejected string = "rejected"
)

// ReceiveAccount Account context of a receive session
type ReceiveAccount struct {

	// Required: true
	CurrencyID *string `json:"currencyId"`

	// Derivation mode, "" is the legacy mode
	// Required: true
	DerivationMode *string `json:"derivationMode"`

	// Address the funds should be sent to
	// Required: true
	FreshAddress *string `json:"freshAddress"`

	// Derivation path of the fresh address
	// Required: true
	FreshAddressPath *string `json:"freshAddressPath"`

	// Account name
	// Required: true
	Name *string `json:"name"`

	// Token name of token accounts
	TokenName string `json:"tokenName,omitempty"`
}

// Validate validates this receive account
func (m *ReceiveAccount) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("currencyId", "body", m.CurrencyID); err != nil {
		res = append(res, err)
	}

	if m.DerivationMode == nil {
		res = append(res, errors.Required("derivationMode", "body", nil))
	}

	if err := validate.Required("freshAddress", "body", m.FreshAddress); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("freshAddressPath", "body", m.FreshAddressPath); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// VerificationError Error of the last verification attempt
type VerificationError struct {

	// Name of the account whose address the device did not return
	AccountName string `json:"accountName,omitempty"`

	// Kind of error
	// Required: true
	// Enum: ["device_disconnected","address_mismatch","other"]
	Kind *string `json:"kind"`

	// Human readable message
	// Required: true
	Message *string `json:"message"`
}

// Validate validates this verification error
func (m *VerificationError) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("kind", "body", m.Kind); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("kind", "body", *m.Kind, []interface{}{"device_disconnected", "address_mismatch", "other"}, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ReceiveSession A receive flow session
type ReceiveSession struct {

	// Required: true
	Account *ReceiveAccount `json:"account"`

	// Whether the session moved past the verification once
	// Required: true
	Advanced *bool `json:"advanced"`

	// Current disruption notice of the currency
	Alert *CurrencyStatus `json:"alert,omitempty"`

	// Required: true
	Closed *bool `json:"closed"`

	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt"`

	// Handle of the device the receive step was entered with
	// Format: uuid4
	DeviceHandle strfmt.UUID4 `json:"deviceHandle,omitempty"`

	// Error of the last attempt
	Error *VerificationError `json:"error,omitempty"`

	// ID of the session
	// Required: true
	// Format: uuid4
	ID *strfmt.UUID4 `json:"id"`

	// Whether a device request is in flight
	// Required: true
	Pending *bool `json:"pending"`

	// Whether the user continued without a device
	// Required: true
	Skipped *bool `json:"skipped"`

	// Controller state
	// Required: true
	State *string `json:"state"`

	// Verification status
	// Required: true
	// Enum: ["unset","verified","rejected"]
	Status *string `json:"status"`

	// Step of the flow
	// Required: true
	// Enum: ["device","receive"]
	Step *string `json:"step"`

	// Required: true
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt"`
}

// Validate validates this receive session
func (m *ReceiveSession) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("account", "body", m.Account); err != nil {
		res = append(res, err)
	} else if err := m.Account.Validate(formats); err != nil {
		res = append(res, err)
	}

	for name, value := range map[string]*bool{
		"advanced": m.Advanced,
		"closed":   m.Closed,
		"pending":  m.Pending,
		"skipped":  m.Skipped,
	} {
		if err := validate.Required(name, "body", value); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("createdAt", "body", m.CreatedAt); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("updatedAt", "body", m.UpdatedAt); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	} else if err := validate.FormatOf("id", "body", "uuid4", m.ID.String(), formats); err != nil {
		res = append(res, err)
	}

	if m.DeviceHandle != "" {
		if err := validate.FormatOf("deviceHandle", "body", "uuid4", m.DeviceHandle.String(), formats); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.Required("state", "body", m.State); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("status", "body", m.Status); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("status", "body", *m.Status, []interface{}{ReceiveSessionStatusUnset, ReceiveSessionStatusVerified, ReceiveSessionStatusRejected}, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("step", "body", m.Step); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("step", "body", *m.Step, []interface{}{ReceiveSessionStepDevice, ReceiveSessionStepReceive}, true); err != nil {
		res = append(res, err)
	}

	if m.Error != nil {
		if err := m.Error.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if m.Alert != nil {
		if err := m.Alert.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *ReceiveSession) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *ReceiveSession) UnmarshalBinary(b []byte) error {
	var res ReceiveSession
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// GetReceiveSessionsResponse get receive sessions response
type GetReceiveSessionsResponse struct {

	// Open sessions, oldest first
	// Required: true
	Data []*ReceiveSession `json:"data"`
}

// Validate validates this get receive sessions response
func (m *GetReceiveSessionsResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("data", "body", m.Data); err != nil {
		return err
	}

	return validateEach("data", m.Data, formats)
}

// PostCreateReceiveSessionPayload post create receive session payload
type PostCreateReceiveSessionPayload struct {

	// Account number, 0 based
	// Minimum: 0
	// Maximum: 2147483647
	Account *int64 `json:"account,omitempty"`

	// Connect the current device right away and start verification
	ConnectDevice *bool `json:"connectDevice,omitempty"`

	// Required: true
	// Min Length: 1
	CurrencyID *string `json:"currencyId"`

	// Derivation mode, "" is the legacy mode
	// Enum: ["","segwit","native_segwit"]
	DerivationMode string `json:"derivationMode,omitempty"`

	// Address index, 0 based
	// Minimum: 0
	// Maximum: 2147483647
	Index *int64 `json:"index,omitempty"`

	// Account name, defaults to "<ticker> <account+1>"
	// Max Length: 64
	Name string `json:"name,omitempty"`

	// Token name for token accounts
	// Max Length: 64
	TokenName string `json:"tokenName,omitempty"`
}

// Validate validates this post create receive session payload
func (m *PostCreateReceiveSessionPayload) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("currencyId", "body", m.CurrencyID); err != nil {
		res = append(res, err)
	} else if err := validate.MinLength("currencyId", "body", *m.CurrencyID, 1); err != nil {
		res = append(res, err)
	}

	if err := validate.EnumCase("derivationMode", "body", m.DerivationMode, []interface{}{"", "segwit", "native_segwit"}, true); err != nil {
		res = append(res, err)
	}

	if m.Account != nil {
		if err := validate.MinimumInt("account", "body", *m.Account, 0, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumInt("account", "body", *m.Account, maxChildIndex, false); err != nil {
			res = append(res, err)
		}
	}

	if m.Index != nil {
		if err := validate.MinimumInt("index", "body", *m.Index, 0, false); err != nil {
			res = append(res, err)
		}
		if err := validate.MaximumInt("index", "body", *m.Index, maxChildIndex, false); err != nil {
			res = append(res, err)
		}
	}

	if err := validate.MaxLength("name", "body", m.Name, 64); err != nil {
		res = append(res, err)
	}

	if err := validate.MaxLength("tokenName", "body", m.TokenName, 64); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ReceiveSessionRouteParams binds the path of /api/v1/receive/sessions/{id} routes
type ReceiveSessionRouteParams struct {

	// Required: true
	// In: path
	ID strfmt.UUID4 `param:"id"`
}

// Validate validates the route params
func (o *ReceiveSessionRouteParams) Validate(formats strfmt.Registry) error {
	if err := validate.FormatOf("id", "path", "uuid4", o.ID.String(), formats); err != nil {
		return errors.CompositeValidationError(err)
	}

	return nil
}
