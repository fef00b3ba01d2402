//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github/chapool/go-receive/internal/config"
	"github/chapool/go-receive/internal/metrics"
	"github/chapool/go-receive/internal/wallet"
	"github/chapool/go-receive/internal/wallet/address"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewClock,
	metrics.New,
	NewSeedManager,
	address.NewService,
	wallet.NewService,
	NewHub,
	NewBridge,
	NewRack,
	NewStatusStore,
	NewSessionManager,
)

// InitNewServer returns a new Server instance.
// All components are initialized via go wire according to the configuration.
// Passing t swaps in the test variants of the components (e.g. a mock clock).
func InitNewServer(
	_ config.Server,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
