package artifact

import (
	"math/big"

	"golang.org/x/crypto/blake2s"
)

// seedModulus is 2^32-1.
var seedModulus = big.NewInt(1<<32 - 1)

// DeriveSeed maps an identity and artifact type to a generator seed:
//
//	(big-endian BLAKE2s-256(identity) + t.Offset() + extra) mod (2^32-1)
//
// extra selects independent trials for the same identity.
func DeriveSeed(identity string, t Type, extra int64) uint32 {
	sum := blake2s.Sum256([]byte(identity))
	h := new(big.Int).SetBytes(sum[:])
	h.Add(h, big.NewInt(int64(t.Offset())+extra))
	h.Mod(h, seedModulus)
	return uint32(h.Uint64())
}
