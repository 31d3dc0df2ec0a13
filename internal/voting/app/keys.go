package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/internal/voting/store"
	"github.com/aussiebroadwan/ballot/pkg/cryptox"
	"github.com/aussiebroadwan/ballot/pkg/jwtx"
)

// InitReceiptKeys loads (or creates) the receipt signing key and builds the
// receipt service around it.
//
// With an empty ReceiptKeyFile the key lives only in memory, so receipts
// issued before a restart can no longer be verified.
func InitReceiptKeys(cfg Config, db store.Store, logger *slog.Logger) (*service.ReceiptService, *jwtx.KeySet, error) {
	pemKey, err := cryptox.LoadOrCreateEd25519Key(cfg.ReceiptKeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("receipt key: %w", err)
	}

	receipts, keys, err := service.NewReceiptService(db, pemKey, cfg.ReceiptKeyID, cfg.Issuer)
	if err != nil {
		return nil, nil, err
	}

	if cfg.ReceiptKeyFile == "" {
		logger.Warn("receipt key is ephemeral, receipts will not verify after a restart")
	} else {
		logger.Info("receipt key loaded", "kid", cfg.ReceiptKeyID, "path", cfg.ReceiptKeyFile)
	}
	return receipts, keys, nil
}
