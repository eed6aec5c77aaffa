// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The server refuses
// to start when it returns an error.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if len(cfg.App.TokenSignKey) < MinTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, MinTokenSignKeyLength)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	payment := cfg.Adapter.Payment
	if (payment.KeyID == "") != (payment.KeySecret == "") {
		return fmt.Errorf("%w: payment key id and key secret must be set together", ErrInvalidAdapterConfigs)
	}
	if payment.UnlockFee <= 0 {
		return fmt.Errorf("%w: unlock fee must be a positive amount", ErrInvalidAdapterConfigs)
	}

	return nil
}
