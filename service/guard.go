package service

import (
	"strings"

	"github.com/EccoMoonProject/ERC721Base/config"
)

// AccessGuard resolves the single address allowed to perform privileged
// operations (single-item mint, withdraw, whitelist grant, ownership
// reconfiguration).
type AccessGuard interface {
	CurrentAuthority() string
}

// ConfigGuard reads the authority from the chain config, so an ownership
// transfer is visible on the next call.
type ConfigGuard struct {
}

func (g *ConfigGuard) CurrentAuthority() string {
	return strings.ToLower(config.GetConfig().Chain.Authority)
}

func requireAuthority(guard AccessGuard, caller string) error {
	if caller != guard.CurrentAuthority() {
		return ErrAuthorizationDenied
	}

	return nil
}
