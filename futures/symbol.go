package futures

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeAssetSymbol decodes a bytes32-encoded asset symbol (e.g.
// "0x73455448…00" -> "sETH"). Values that are not valid hex are returned
// unchanged so a malformed row degrades to its wire form instead of failing
// the whole batch.
func DecodeAssetSymbol(encoded string) string {
	raw, err := hexutil.Decode(encoded)
	if err != nil {
		return encoded
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}
