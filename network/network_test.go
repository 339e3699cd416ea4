package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointFor(t *testing.T) {
	cfg := DefaultConfig()
	require.NotEmpty(t, cfg.Endpoints)

	assert.Equal(t, cfg.Endpoints[Optimism], cfg.EndpointFor(Optimism))
	assert.Equal(t, cfg.Endpoints[OptimismKovan], cfg.EndpointFor(OptimismKovan))

	// unknown networks fall back to the default network
	assert.Equal(t, cfg.Endpoints[Optimism], cfg.EndpointFor(ID(1)))
	assert.Equal(t, cfg.Endpoints[Optimism], cfg.EndpointFor(ID(0)))
	assert.Equal(t, cfg.Endpoints[Optimism], cfg.EndpointFor(ID(-5)))
}

func TestEndpointForCustomDefault(t *testing.T) {
	cfg := Config{
		Endpoints: map[ID]string{
			OptimismGoerli: "http://localhost:8000/subgraphs/name/kwenta/futures",
		},
		DefaultNetwork: OptimismGoerli,
	}
	assert.Equal(t, cfg.Endpoints[OptimismGoerli], cfg.EndpointFor(Optimism))
}
