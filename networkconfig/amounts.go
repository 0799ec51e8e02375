package networkconfig

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GweiPerEther is the number of Gwei in one ether (or one PLS on PulseChain).
const GweiPerEther uint64 = 1_000_000_000

// Deposit amount bounds in Gwei.
const (
	MinDepositAmount uint64 = 1 * GweiPerEther
	MaxDepositAmount uint64 = 32 * GweiPerEther

	PulseChainMinDepositAmount uint64 = 1_000_000 * GweiPerEther
	PulseChainMaxDepositAmount uint64 = 32_000_000 * GweiPerEther
)

const pulseChainPrefix = "pulsechain"

// IsPulseChain reports whether the network belongs to the PulseChain family,
// i.e. its case-folded name starts with "pulsechain".
func (c ChainSetting) IsPulseChain() bool {
	return isPulseChainName(c.networkName)
}

// MaxDepositAmount returns the upper deposit bound in Gwei for this network.
func (c ChainSetting) MaxDepositAmount() uint64 {
	if c.IsPulseChain() {
		return PulseChainMaxDepositAmount
	}
	return MaxDepositAmount
}

// MinDepositAmount returns the lower deposit bound in Gwei for this network.
func (c ChainSetting) MinDepositAmount() uint64 {
	if c.IsPulseChain() {
		return PulseChainMinDepositAmount
	}
	return MinDepositAmount
}

// CheckDepositAmount fails with ErrDepositAmountOutOfRange unless
// MinDepositAmount() <= amount <= MaxDepositAmount().
func (c ChainSetting) CheckDepositAmount(amount uint64) error {
	minAmount, maxAmount := c.MinDepositAmount(), c.MaxDepositAmount()
	if amount < minAmount || amount > maxAmount {
		return fmt.Errorf("%w: %d gwei not in [%d, %d] for %s",
			ErrDepositAmountOutOfRange, amount, minAmount, maxAmount, c.networkName)
	}
	return nil
}

func isPulseChainName(name string) bool {
	// Casers keep state and must not be shared between goroutines.
	return strings.HasPrefix(cases.Lower(language.Und).String(name), pulseChainPrefix)
}
