package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aussiebroadwan/ballot/internal/voting/service"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
)

// Audit verifies the ledger in cfg.DatabaseFile once and writes the report to
// w as JSON. It reports whether the ledger is intact.
func Audit(ctx context.Context, cfg Config, w io.Writer) (bool, error) {
	logger := newLogger(cfg, os.Stderr)
	ctx = slogx.WithContext(ctx, logger)

	db, err := openStore(cfg.DatabaseFile)
	if err != nil {
		return false, err
	}
	defer db.Close()

	ledger := &service.LedgerService{Store: db}
	report, err := service.NewLedgerAuditor(ledger, logger, 0).Audit(ctx)
	if err != nil {
		return false, fmt.Errorf("audit: %w", err)
	}

	problems := report.Problems
	if problems == nil {
		problems = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(votingsdk.LedgerVerifyResponse{
		Valid:    report.Valid,
		Entries:  report.Entries,
		HeadHash: report.HeadHash,
		Problems: problems,
	}); err != nil {
		return false, err
	}
	return report.Valid, nil
}
