// Package mint fabricates the identifiers attached to a simulated credential
// mint. The transaction hash is random hex dressed up in an 0x prefix, not a
// digest of anything, and token ids are only probabilistically unique; the
// product treats both as illustrative.
package mint

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const explorerBaseURL = "https://polygonscan.com/tx/"

const (
	tokenRandLen = 9
	txHashLen    = 64

	base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	hexDigits    = "0123456789abcdef"
)

// NewTokenID builds a token identifier of the form
// SKILL-<unix ms>-<9 uppercase base36 chars>.
func NewTokenID() string {
	var b strings.Builder
	b.WriteString("SKILL-")
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	b.WriteByte('-')
	for i := 0; i < tokenRandLen; i++ {
		b.WriteByte(base36Digits[rand.Intn(len(base36Digits))])
	}
	return strings.ToUpper(b.String())
}

// NewTxHash returns an 0x-prefixed string of 64 independently drawn hex
// nibbles. No collision check is performed.
func NewTxHash() string {
	var b strings.Builder
	b.WriteString("0x")
	for i := 0; i < txHashLen; i++ {
		b.WriteByte(hexDigits[rand.Intn(len(hexDigits))])
	}
	return b.String()
}

// ExplorerURL builds a (non-functional) block-explorer link for a fabricated
// transaction hash.
func ExplorerURL(txHash string) string {
	return explorerBaseURL + txHash
}
