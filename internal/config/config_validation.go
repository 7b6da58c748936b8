// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordHashCost is the lowest bcrypt cost accepted for new hashes.
const MinPasswordHashCost = 12

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateApp(); err != nil {
		return err
	}

	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

// validateSeed checks only what the seeder needs: a database and a usable
// password hashing cost.
func (cfg *StructuredConfig) validateSeed() error {
	if err := cfg.validateHashCost(); err != nil {
		return err
	}
	return cfg.validateStorage()
}

func (cfg *StructuredConfig) validateApp() error {
	if strings.TrimSpace(cfg.App.TokenSignKey) == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if strings.TrimSpace(cfg.App.TokenIssuer) == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	return cfg.validateHashCost()
}

func (cfg *StructuredConfig) validateHashCost() error {
	if cfg.App.PasswordHashCost < MinPasswordHashCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d",
			ErrInvalidAppConfigs, MinPasswordHashCost, bcrypt.MaxCost)
	}
	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Client.SessionFile == "" || cfg.Client.CacheTTL < 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
