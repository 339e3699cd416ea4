package network

// ID is an EVM chain identifier.
type ID int64

// Chain IDs with a deployed futures subgraph.
const (
	Optimism       ID = 10
	OptimismKovan  ID = 69
	OptimismGoerli ID = 420
)

// Config maps networks to their futures subgraph endpoints.
type Config struct {
	Endpoints      map[ID]string
	DefaultNetwork ID
}

// DefaultConfig returns the endpoint table of the hosted futures subgraphs.
func DefaultConfig() Config {
	return Config{
		Endpoints: map[ID]string{
			Optimism:       "https://api.thegraph.com/subgraphs/name/kwenta/optimism-main",
			OptimismKovan:  "https://api.thegraph.com/subgraphs/name/kwenta/optimism-kovan",
			OptimismGoerli: "https://api.thegraph.com/subgraphs/name/kwenta/optimism-goerli",
		},
		DefaultNetwork: Optimism,
	}
}

// EndpointFor returns the subgraph endpoint of the given network. Networks
// without a configured endpoint fall back to the default network, never to
// an error.
func (c Config) EndpointFor(id ID) string {
	if url, ok := c.Endpoints[id]; ok {
		return url
	}
	return c.Endpoints[c.DefaultNetwork]
}
