package types

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PublicHTTPErrorType Type of error returned, should be used for client-side error handling
type PublicHTTPErrorType string

// NewPublicHTTPErrorType returns a pointer to v.
func NewPublicHTTPErrorType(value PublicHTTPErrorType) *PublicHTTPErrorType {
	return &value
}

// Pointer returns a pointer to a freshly-allocated PublicHTTPErrorType.
func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

const (

	// PublicHTTPErrorTypeGeneric captures enum value "generic"
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"

	// PublicHTTPErrorTypeDEVICENOTFOUND captures enum value "DEVICE_NOT_FOUND"
	PublicHTTPErrorTypeDEVICENOTFOUND PublicHTTPErrorType = "DEVICE_NOT_FOUND"

	// PublicHTTPErrorTypeNODEVICE captures enum value "NO_DEVICE"
	PublicHTTPErrorTypeNODEVICE PublicHTTPErrorType = "NO_DEVICE"

	// PublicHTTPErrorTypeUNKNOWNPROFILE captures enum value "UNKNOWN_PROFILE"
	PublicHTTPErrorTypeUNKNOWNPROFILE PublicHTTPErrorType = "UNKNOWN_PROFILE"

	// PublicHTTPErrorTypeUNKNOWNCURRENCY captures enum value "UNKNOWN_CURRENCY"
	PublicHTTPErrorTypeUNKNOWNCURRENCY PublicHTTPErrorType = "UNKNOWN_CURRENCY"

	// PublicHTTPErrorTypeUNSUPPORTEDMODE captures enum value "UNSUPPORTED_MODE"
	PublicHTTPErrorTypeUNSUPPORTEDMODE PublicHTTPErrorType = "UNSUPPORTED_MODE"

	// PublicHTTPErrorTypeSESSIONNOTFOUND captures enum value "SESSION_NOT_FOUND"
	PublicHTTPErrorTypeSESSIONNOTFOUND PublicHTTPErrorType = "SESSION_NOT_FOUND"

	// PublicHTTPErrorTypeSESSIONCLOSED captures enum value "SESSION_CLOSED"
	PublicHTTPErrorTypeSESSIONCLOSED PublicHTTPErrorType = "SESSION_CLOSED"

	// PublicHTTPErrorTypeWRONGSTEP captures enum value "WRONG_STEP"
	PublicHTTPErrorTypeWRONGSTEP PublicHTTPErrorType = "WRONG_STEP"

	// PublicHTTPErrorTypeINVALIDTRANSITION captures enum value "INVALID_TRANSITION"
	PublicHTTPErrorTypeINVALIDTRANSITION PublicHTTPErrorType = "INVALID_TRANSITION"
)

// for schema
var publicHttpErrorTypeEnum []interface{}

func init() {
	var res []PublicHTTPErrorType
	if err := json.Unmarshal([]byte(`["generic","DEVICE_NOT_FOUND","NO_DEVICE","UNKNOWN_PROFILE","UNKNOWN_CURRENCY","UNSUPPORTED_MODE","SESSION_NOT_FOUND","SESSION_CLOSED","WRONG_STEP","INVALID_TRANSITION"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		publicHttpErrorTypeEnum = append(publicHttpErrorTypeEnum, v)
	}
}

func (m PublicHTTPErrorType) validatePublicHTTPErrorTypeEnum(path, location string, value PublicHTTPErrorType) error {
	if err := validate.EnumCase(path, location, value, publicHttpErrorTypeEnum, true); err != nil {
		return err
	}
	return nil
}

// Validate validates this public HTTP error type
func (m PublicHTTPErrorType) Validate(_ strfmt.Registry) error {
	// value enum
	if err := m.validatePublicHTTPErrorTypeEnum("", "body", m); err != nil {
		return err
	}

	return nil
}
