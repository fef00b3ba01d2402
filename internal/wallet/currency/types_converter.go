package currency

import (
	"github.com/go-openapi/swag"
	"github/chapool/go-receive/internal/types"
)

func StatusToTypes(st Status) *types.CurrencyStatus {
	return &types.CurrencyStatus{
		Message: swag.String(st.Message),
		Link:    st.Link,
		Warning: swag.Bool(st.Warning),
	}
}

func (c *Currency) ToTypes() *types.Currency {
	modes := make([]string, 0, len(c.Purposes))
	for _, m := range c.Modes() {
		modes = append(modes, string(m))
	}

	return &types.Currency{
		ID:     swag.String(c.ID),
		Name:   swag.String(c.Name),
		Ticker: swag.String(c.Ticker),
		Family: swag.String(string(c.Family)),
		Modes:  modes,
	}
}
