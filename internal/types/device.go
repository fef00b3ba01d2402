package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// Device A connected device
type Device struct {

	// Time the device was connected
	// Required: true
	// Format: date-time
	ConnectedAt *strfmt.DateTime `json:"connectedAt"`

	// Connection handle, changes on every reconnection
	// Required: true
	// Format: uuid4
	Handle *strfmt.UUID4 `json:"handle"`

	// Whether this is the device address verification talks to
	// Required: true
	Live *bool `json:"live"`

	// Model of the device
	// Required: true
	ModelID *string `json:"modelId"`

	// Path the device is connected at
	// Required: true
	Path *string `json:"path"`
}

// Validate validates this device
func (m *Device) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("connectedAt", "body", m.ConnectedAt); err != nil {
		res = append(res, err)
	} else if err := validate.FormatOf("connectedAt", "body", "date-time", m.ConnectedAt.String(), formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("handle", "body", m.Handle); err != nil {
		res = append(res, err)
	} else if err := validate.FormatOf("handle", "body", "uuid4", m.Handle.String(), formats); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("live", "body", m.Live); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("modelId", "body", m.ModelID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("path", "body", m.Path); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation
func (m *Device) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *Device) UnmarshalBinary(b []byte) error {
	var res Device
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// GetDevicesResponse get devices response
type GetDevicesResponse struct {

	// Connected devices, oldest connection first
	// Required: true
	Data []*Device `json:"data"`
}

// Validate validates this get devices response
func (m *GetDevicesResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("data", "body", m.Data); err != nil {
		return err
	}

	return validateEach("data", m.Data, formats)
}

// PostPlugDevicePayload post plug device payload
type PostPlugDevicePayload struct {

	// Name of the device profile to plug
	// Required: true
	// Min Length: 1
	Profile *string `json:"profile"`
}

// Validate validates this post plug device payload
func (m *PostPlugDevicePayload) Validate(_ strfmt.Registry) error {
	if err := validate.Required("profile", "body", m.Profile); err != nil {
		return errors.CompositeValidationError(err)
	}

	if err := validate.MinLength("profile", "body", *m.Profile, 1); err != nil {
		return errors.CompositeValidationError(err)
	}

	return nil
}

// DeleteDeviceRouteParams binds the path of DELETE /api/v1/devices/{handle}
type DeleteDeviceRouteParams struct {

	// Required: true
	// In: path
	Handle strfmt.UUID4 `param:"handle"`
}

// Validate validates the route params
func (o *DeleteDeviceRouteParams) Validate(formats strfmt.Registry) error {
	if err := validate.FormatOf("handle", "path", "uuid4", o.Handle.String(), formats); err != nil {
		return errors.CompositeValidationError(err)
	}

	return nil
}
