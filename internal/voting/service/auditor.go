package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/ballot/pkg/idx"
	"github.com/aussiebroadwan/ballot/pkg/slogx"
)

// LedgerAuditor periodically verifies the whole ledger in the background and
// logs any problem it finds.
type LedgerAuditor struct {
	Ledger   *LedgerService
	Logger   *slog.Logger
	Interval time.Duration

	mu   sync.RWMutex
	last *LedgerReport

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewLedgerAuditor creates an auditor. If interval is 0 or negative it
// defaults to 5 minutes.
func NewLedgerAuditor(ledger *LedgerService, logger *slog.Logger, interval time.Duration) *LedgerAuditor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &LedgerAuditor{
		Ledger:   ledger,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the audit loop in the background. Call Stop to end it.
func (a *LedgerAuditor) Start() {
	go a.run()
	a.Logger.Info("ledger auditor started", "interval", a.Interval)
}

// Stop ends the loop and waits for an in-progress audit to finish.
func (a *LedgerAuditor) Stop() {
	close(a.stopCh)
	<-a.doneCh
	a.Logger.Info("ledger auditor stopped")
}

// LastReport returns the most recent audit result, if one has completed.
func (a *LedgerAuditor) LastReport() (LedgerReport, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.last == nil {
		return LedgerReport{}, false
	}
	return *a.last, true
}

func (a *LedgerAuditor) run() {
	defer close(a.doneCh)

	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	// Audit immediately on startup
	a.Audit(context.Background())

	for {
		select {
		case <-ticker.C:
			a.Audit(context.Background())
		case <-a.stopCh:
			return
		}
	}
}

// Audit runs one verification pass and records the result.
func (a *LedgerAuditor) Audit(ctx context.Context) (LedgerReport, error) {
	ctx = slogx.WithContext(ctx, a.Logger.With("audit_run", idx.New().String()))
	log := slogx.FromContext(ctx)

	start := time.Now()
	report, err := a.Ledger.Verify(ctx)
	if err != nil {
		log.Error("ledger audit failed", "error", err)
		return LedgerReport{}, err
	}

	a.mu.Lock()
	a.last = &report
	a.mu.Unlock()

	if !report.Valid {
		for _, p := range report.Problems {
			log.Error("ledger problem", "problem", p)
		}
	}
	log.Info("ledger audit completed",
		"valid", report.Valid,
		"entries", report.Entries,
		"head_hash", report.HeadHash,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}
