// Package market keeps the read-side view of the factory: sale constants cached
// per chain, recently read snapshots, and the sale listing.
package market

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adiboy-23/fun-pump/internal/metrics"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

const (
	// DefaultListingLimit is how many sales the listing shows.
	DefaultListingLimit = 6
	// DefaultSnapshotTTL bounds how long a cached snapshot is served.
	DefaultSnapshotTTL = 5 * time.Second

	listingConcurrency = 4
)

// Reader is the chain read surface the session depends on.
//
//go:generate mockery --name Reader --output mocks --outpkg mocks --filename mock_reader.go --with-expecter
type Reader interface {
	NodeChainID(ctx context.Context) (uint64, error)
	ReadSaleConstants(ctx context.Context) (sale.Constants, error)
	ReadSaleSnapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error)
	ReadUnitCost(ctx context.Context, sold *big.Int) (*big.Int, error)
	ReadTotalSales(ctx context.Context) (uint64, error)
}

// SaleView is a snapshot with everything derived from it for display.
type SaleView struct {
	Snapshot  sale.Snapshot
	Constants sale.Constants
	UnitCost  *big.Int
	// Progress is unset when the target is zero.
	Progress        *float64
	ProgressPercent string
	Closed          bool
}

// Config tunes the session.
type Config struct {
	ListingLimit int
	// SnapshotTTL of zero disables snapshot caching.
	SnapshotTTL time.Duration
	// MaxAmountUnits caps quotes the same way purchases are capped. Zero means no cap.
	MaxAmountUnits uint64
}

type cachedSnapshot struct {
	snapshot sale.Snapshot
	readAt   time.Time
}

type snapshotKey struct {
	chainID uint64
	id      sale.TokenID
}

// Session caches reads for the presentation layer. Purchases never use these caches.
type Session struct {
	reader Reader
	engine *pricing.Engine
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	constants map[uint64]sale.Constants
	snapshots map[snapshotKey]cachedSnapshot
}

// NewSession creates a session over reader.
func NewSession(reader Reader, engine *pricing.Engine, cfg Config, logger *zap.Logger) *Session {
	if cfg.ListingLimit <= 0 {
		cfg.ListingLimit = DefaultListingLimit
	}
	if cfg.SnapshotTTL < 0 {
		cfg.SnapshotTTL = 0
	}
	return &Session{
		reader:    reader,
		engine:    engine,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		constants: make(map[uint64]sale.Constants),
		snapshots: make(map[snapshotKey]cachedSnapshot),
	}
}

// Constants returns the sale constants of the node's chain, reading them once per chain.
func (s *Session) Constants(ctx context.Context) (sale.Constants, error) {
	chainID, err := s.reader.NodeChainID(ctx)
	if err != nil {
		return sale.Constants{}, err
	}

	s.mu.Lock()
	c, ok := s.constants[chainID]
	s.mu.Unlock()
	if ok {
		return c, nil
	}

	c, err = s.reader.ReadSaleConstants(ctx)
	if err != nil {
		return sale.Constants{}, err
	}

	s.mu.Lock()
	s.constants[c.ChainID] = c
	s.mu.Unlock()

	s.logger.Debug("Cached sale constants",
		zap.Uint64("chain_id", c.ChainID),
		zap.String("target", c.Target.String()),
		zap.String("token_limit", c.TokenLimit.String()))
	return c, nil
}

// Snapshot returns sale id, served from cache while it is fresh.
func (s *Session) Snapshot(ctx context.Context, id sale.TokenID) (sale.Snapshot, error) {
	chainID, err := s.reader.NodeChainID(ctx)
	if err != nil {
		return sale.Snapshot{}, err
	}
	key := snapshotKey{chainID, id}

	s.mu.Lock()
	cached, ok := s.snapshots[key]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.readAt) < s.cfg.SnapshotTTL {
		return cached.snapshot, nil
	}

	snap, err := s.reader.ReadSaleSnapshot(ctx, id)
	if err != nil {
		return sale.Snapshot{}, err
	}

	s.mu.Lock()
	s.snapshots[key] = cachedSnapshot{snapshot: snap, readAt: s.now()}
	s.mu.Unlock()
	return snap, nil
}

// Sale returns the view of one sale.
func (s *Session) Sale(ctx context.Context, id sale.TokenID) (SaleView, error) {
	constants, err := s.Constants(ctx)
	if err != nil {
		return SaleView{}, err
	}
	snap, err := s.Snapshot(ctx, id)
	if err != nil {
		return SaleView{}, err
	}
	return s.view(ctx, snap, constants)
}

func (s *Session) view(ctx context.Context, snap sale.Snapshot, constants sale.Constants) (SaleView, error) {
	cost, err := s.engine.UnitCostAt(ctx, snap.Sold)
	if err != nil {
		return SaleView{}, err
	}

	v := SaleView{
		Snapshot:  snap,
		Constants: constants,
		UnitCost:  cost,
		Closed:    pricing.IsSaleClosed(snap, constants),
	}
	if ratio, err := pricing.ProgressRatio(snap.Raised, constants.Target); err == nil {
		v.Progress = &ratio
		v.ProgressPercent, _ = pricing.ProgressPercent(snap.Raised, constants.Target)
	}
	return v, nil
}

// Listing returns up to the listing limit of the first sales created, newest first.
func (s *Session) Listing(ctx context.Context) ([]SaleView, error) {
	constants, err := s.Constants(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.reader.ReadTotalSales(ctx)
	if err != nil {
		return nil, err
	}

	n := total
	if n > uint64(s.cfg.ListingLimit) {
		n = uint64(s.cfg.ListingLimit)
	}
	views := make([]SaleView, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listingConcurrency)
	for i := uint64(0); i < n; i++ {
		g.Go(func() error {
			id := sale.TokenID(i)
			snap, err := s.Snapshot(gctx, id)
			if err != nil {
				return fmt.Errorf("sale %d: %w", id, err)
			}
			v, err := s.view(gctx, snap, constants)
			if err != nil {
				return fmt.Errorf("sale %d: %w", id, err)
			}
			// newest first
			views[n-1-i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// Quote prices amountUnits of sale id at its current sold amount.
func (s *Session) Quote(ctx context.Context, id sale.TokenID, amountUnits uint64) (sale.Quote, error) {
	if err := (sale.PurchaseRequest{AmountUnits: amountUnits}).Validate(); err != nil {
		return sale.Quote{}, err
	}
	if s.cfg.MaxAmountUnits > 0 && amountUnits > s.cfg.MaxAmountUnits {
		return sale.Quote{}, fmt.Errorf("%w: operator limit is %d", sale.ErrInvalidAmount, s.cfg.MaxAmountUnits)
	}
	snap, err := s.Snapshot(ctx, id)
	if err != nil {
		return sale.Quote{}, err
	}
	return s.engine.Quote(ctx, snap.Sold, amountUnits)
}

// Invalidate drops every cached snapshot of sale id.
func (s *Session) Invalidate(id sale.TokenID) {
	s.mu.Lock()
	for key := range s.snapshots {
		if key.id == id {
			delete(s.snapshots, key)
		}
	}
	s.mu.Unlock()

	metrics.SnapshotInvalidations.Inc()
	s.logger.Debug("Invalidated sale snapshot", zap.Stringer("token_id", id))
}

// Reset drops all cached constants and snapshots, e.g. after a reconnect.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.constants = make(map[uint64]sale.Constants)
	s.snapshots = make(map[snapshotKey]cachedSnapshot)
}
