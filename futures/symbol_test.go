package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAssetSymbol(t *testing.T) {
	assert.Equal(t, "sETH", DecodeAssetSymbol(sETHBytes32))
	assert.Equal(t, "sBTC",
		DecodeAssetSymbol("0x7342544300000000000000000000000000000000000000000000000000000000"))

	// malformed values degrade to their wire form
	assert.Equal(t, "sETH", DecodeAssetSymbol("sETH"))
	assert.Equal(t, "", DecodeAssetSymbol(""))
}
