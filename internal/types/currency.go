package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// CurrencyStatus Disruption notice of a currency
type CurrencyStatus struct {

	// Link to more information
	Link string `json:"link,omitempty"`

	// Notice shown next to the address
	// Required: true
	Message *string `json:"message"`

	// Whether the notice is a warning rather than an outage
	// Required: true
	Warning *bool `json:"warning"`
}

// Validate validates this currency status
func (m *CurrencyStatus) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("warning", "body", m.Warning); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Currency A supported currency
type Currency struct {

	// Address family
	// Required: true
	// Enum: ["bitcoin","ethereum"]
	Family *string `json:"family"`

	// Identifier used in requests
	// Required: true
	ID *string `json:"id"`

	// Supported derivation modes, "" is the legacy mode
	// Required: true
	Modes []string `json:"modes"`

	// Display name
	// Required: true
	Name *string `json:"name"`

	// Current disruption notice
	Status *CurrencyStatus `json:"status,omitempty"`

	// Ticker
	// Required: true
	Ticker *string `json:"ticker"`
}

// Validate validates this currency
func (m *Currency) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("family", "body", m.Family); err != nil {
		res = append(res, err)
	} else if err := validate.EnumCase("family", "body", *m.Family, []interface{}{"bitcoin", "ethereum"}, true); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("modes", "body", m.Modes); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("name", "body", m.Name); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("ticker", "body", m.Ticker); err != nil {
		res = append(res, err)
	}

	if m.Status != nil {
		if err := m.Status.Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// GetCurrenciesResponse get currencies response
type GetCurrenciesResponse struct {

	// Required: true
	Data []*Currency `json:"data"`
}

// Validate validates this get currencies response
func (m *GetCurrenciesResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("data", "body", m.Data); err != nil {
		return err
	}

	return validateEach("data", m.Data, formats)
}
