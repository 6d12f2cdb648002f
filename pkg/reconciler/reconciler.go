// Package reconciler keeps server-side sale views in step with changes made on
// chain by other buyers.
package reconciler

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/internal/metrics"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

const reconcileTimeout = 2 * time.Minute

// Reader is the chain read surface the reconciler polls.
//
//go:generate mockery --name Reader --output mocks --outpkg mocks --filename mock_reader.go --with-expecter
type Reader interface {
	ReadSaleConstants(ctx context.Context) (sale.Constants, error)
	ReadTotalSales(ctx context.Context) (uint64, error)
	ReadSaleSnapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error)
}

// Status describes the last reconciliation pass.
type Status struct {
	LastRun    time.Time
	TotalSales uint64
	Open       int
	Changed    int
	Err        error
}

type fingerprint struct {
	sold   string
	raised string
	open   bool
}

func fingerprintOf(s sale.Snapshot) fingerprint {
	return fingerprint{sold: bigString(s.Sold), raised: bigString(s.Raised), open: s.IsOpen}
}

func bigString(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Reconciler re-reads the listed sales and invalidates the ones whose sold,
// raised or open state moved since the previous pass.
type Reconciler struct {
	reader     Reader
	invalidate func(sale.TokenID)
	window     int
	logger     *zap.Logger
	now        func() time.Time

	mu     sync.Mutex
	seen   map[sale.TokenID]fingerprint
	status Status

	stopCh chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// New creates a reconciler over the first window sales. invalidate is called
// for every sale that changed.
func New(reader Reader, invalidate func(sale.TokenID), window int, logger *zap.Logger) *Reconciler {
	if window <= 0 {
		window = 1
	}
	return &Reconciler{
		reader:     reader,
		invalidate: invalidate,
		window:     window,
		logger:     logger,
		now:        time.Now,
		seen:       make(map[sale.TokenID]fingerprint),
		stopCh:     make(chan struct{}),
	}
}

// ReconcileAll runs one pass. The first pass only records state.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	start := r.now()
	st, err := r.reconcile(ctx)
	st.LastRun = start
	st.Err = err

	r.mu.Lock()
	r.status = st
	r.mu.Unlock()

	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("reconciler", sale.ClassOf(err).String()).Inc()
		return err
	}

	metrics.SalesTotal.Set(float64(st.TotalSales))
	metrics.SalesOpen.Set(float64(st.Open))
	r.logger.Debug("Sale reconciliation completed",
		zap.Uint64("total_sales", st.TotalSales),
		zap.Int("open", st.Open),
		zap.Int("changed", st.Changed),
		zap.Duration("duration", r.now().Sub(start)))
	return nil
}

func (r *Reconciler) reconcile(ctx context.Context) (Status, error) {
	constants, err := r.reader.ReadSaleConstants(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("failed to read sale constants: %w", err)
	}
	total, err := r.reader.ReadTotalSales(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("failed to read total sales: %w", err)
	}

	st := Status{TotalSales: total}
	n := min(total, uint64(r.window))
	for i := uint64(0); i < n; i++ {
		id := sale.TokenID(i)
		snap, err := r.reader.ReadSaleSnapshot(ctx, id)
		if err != nil {
			return st, fmt.Errorf("failed to read sale %d: %w", id, err)
		}
		if !snap.ClosedFor(constants) {
			st.Open++
		}

		fp := fingerprintOf(snap)
		r.mu.Lock()
		prev, known := r.seen[id]
		r.seen[id] = fp
		r.mu.Unlock()

		if known && prev != fp {
			st.Changed++
			r.logger.Info("Sale changed on chain",
				zap.Stringer("token_id", id),
				zap.String("sold", sale.FormatUnits(snap.Sold)),
				zap.String("raised", sale.FormatUnits(snap.Raised)),
				zap.Bool("open", snap.IsOpen))
			r.invalidate(id)
		}
	}
	return st, nil
}

// Status returns the outcome of the last pass.
func (r *Reconciler) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// StartPeriodicReconciliation starts a background goroutine that reconciles periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic sale reconciliation", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
				if err := r.ReconcileAll(ctx); err != nil {
					r.logger.Warn("Periodic sale reconciliation failed", zap.Error(err))
				}
				cancel()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic sale reconciliation")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation. It is safe to call more than once.
func (r *Reconciler) Stop() {
	r.once.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
