package device

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/strfmt/conv"
	"github.com/go-openapi/swag"
	"github/chapool/go-receive/internal/types"
)

// ToTypes converts d. live marks the device address verification talks to.
func (d *Device) ToTypes(live bool) *types.Device {
	return &types.Device{
		Handle:      conv.UUID4(strfmt.UUID4(d.Handle.String())),
		Path:        swag.String(d.Path),
		ModelID:     swag.String(d.ModelID),
		ConnectedAt: conv.DateTime(strfmt.DateTime(d.ConnectedAt)),
		Live:        swag.Bool(live),
	}
}
