package types

import (
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

type validatable interface {
	Validate(strfmt.Registry) error
}

func validateEach[T validatable](name string, items []T, formats strfmt.Registry) error {
	for i, item := range items {
		if err := item.Validate(formats); err != nil {
			if ve, ok := err.(*errors.Validation); ok {
				return ve.ValidateName(name + "." + strconv.Itoa(i))
			}
			return err
		}
	}

	return nil
}
