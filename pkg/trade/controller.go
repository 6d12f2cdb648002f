package trade

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/internal/metrics"
	"github.com/adiboy-23/fun-pump/pkg/pricing"
	"github.com/adiboy-23/fun-pump/pkg/sale"
)

const (
	// DefaultConfirmationTimeout bounds the wait for a mined receipt.
	DefaultConfirmationTimeout = 2 * time.Minute
	// DefaultHistoryLimit is the number of attempts History returns when limit <= 0.
	DefaultHistoryLimit = 50

	// settled attempts kept in memory for AttemptStatus and Wait
	retainedAttempts = 1024
	storeTimeout     = 5 * time.Second
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("trade controller is closed")

// Config tunes the controller.
type Config struct {
	ConfirmationTimeout time.Duration
	HistoryLimit        int
	// MaxAmountUnits lowers the accepted purchase ceiling below the contract maximum. 0 keeps it.
	MaxAmountUnits uint64
}

// Controller runs purchase attempts. At most one attempt per token is in flight.
type Controller struct {
	gateway Gateway
	engine  *pricing.Engine
	store   Store
	cfg     Config
	logger  *zap.Logger

	now   func() time.Time
	newID func() string

	mu        sync.Mutex
	attempts  map[string]*Attempt
	done      map[string]chan struct{}
	inFlight  map[sale.TokenID]string
	settled   []string
	listeners map[uint64]func(sale.TokenID)
	nextSub   uint64
	closed    bool

	wg sync.WaitGroup
}

var _ Service = (*Controller)(nil)

// NewController creates a controller. store may be nil, in which case outcomes
// are kept in memory only.
func NewController(gateway Gateway, store Store, cfg Config, logger *zap.Logger) *Controller {
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = DefaultConfirmationTimeout
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &Controller{
		gateway:   gateway,
		engine:    pricing.NewEngine(gateway),
		store:     store,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
		attempts:  make(map[string]*Attempt),
		done:      make(map[string]chan struct{}),
		inFlight:  make(map[sale.TokenID]string),
		listeners: make(map[uint64]func(sale.TokenID)),
	}
}

// Submit starts a purchase of input whole units of sale tokenID and returns the attempt ID.
//
// Invalid input settles the attempt as failed before any chain access and returns
// its ID together with the error. A token that already has an attempt in flight is
// rejected with sale.ErrAttemptInProgress and no attempt is created. Otherwise the
// attempt continues in the background, detached from ctx cancellation.
func (c *Controller) Submit(ctx context.Context, tokenID sale.TokenID, input string) (string, error) {
	now := c.now()
	a := &Attempt{
		ID:        c.newID(),
		TokenID:   tokenID,
		Input:     input,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}

	req, err := sale.ParsePurchaseRequest(input)
	if err == nil && c.cfg.MaxAmountUnits > 0 && req.AmountUnits > c.cfg.MaxAmountUnits {
		err = fmt.Errorf("%w: operator limit is %d", sale.ErrInvalidAmount, c.cfg.MaxAmountUnits)
	}
	if err != nil {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return "", ErrClosed
		}
		a.fail(err, now)
		done := make(chan struct{})
		close(done)
		c.attempts[a.ID] = a
		c.done[a.ID] = done
		c.retire(a.ID)
		out := a.clone()
		c.mu.Unlock()

		c.record(context.WithoutCancel(ctx), out, 0)
		return a.ID, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	if holder, busy := c.inFlight[tokenID]; busy {
		c.mu.Unlock()
		return "", fmt.Errorf("%w: attempt %s", sale.ErrAttemptInProgress, holder)
	}
	a.AmountUnits = req.AmountUnits
	a.State = StateValidating
	done := make(chan struct{})
	c.attempts[a.ID] = a
	c.done[a.ID] = done
	c.inFlight[tokenID] = a.ID
	c.wg.Add(1)
	c.mu.Unlock()

	metrics.AttemptsInFlight.Inc()
	go c.run(context.WithoutCancel(ctx), a.ID, done)

	return a.ID, nil
}

func (c *Controller) run(ctx context.Context, id string, done chan struct{}) {
	defer c.wg.Done()
	defer close(done)

	start := c.now()
	err := c.execute(ctx, id)
	c.settle(ctx, id, err, c.now().Sub(start))
}

func (c *Controller) execute(ctx context.Context, id string) error {
	c.mu.Lock()
	tokenID, amount := c.attempts[id].TokenID, c.attempts[id].AmountUnits
	c.mu.Unlock()

	// Validating: every value below is read after Submit.
	constants, err := c.gateway.ReadSaleConstants(ctx)
	if err != nil {
		return classify(err, sale.ErrChainRead)
	}
	snap, err := c.gateway.ReadSaleSnapshot(ctx, tokenID)
	if err != nil {
		return classify(err, sale.ErrChainRead)
	}
	if pricing.IsSaleClosed(snap, constants) {
		return fmt.Errorf("%w: sale %d raised %s of %s", sale.ErrSaleClosed, tokenID,
			sale.FormatUnits(snap.Raised), sale.FormatUnits(constants.Target))
	}

	c.transition(id, StateQuoting, func(a *Attempt) { a.ChainID = constants.ChainID })
	quote, err := c.engine.Quote(ctx, snap.Sold, amount)
	if err != nil {
		return classify(err, sale.ErrChainRead)
	}

	c.transition(id, StateAwaitingSignature, func(a *Attempt) { a.Quote = &quote })
	handle, err := c.gateway.SubmitPurchase(ctx, tokenID, amount, quote.TotalCost)
	if err != nil {
		return classify(err, sale.ErrChainWrite)
	}

	c.transition(id, StateAwaitingConfirmation, func(a *Attempt) {
		a.TxHash = &handle.Hash
		a.Account = handle.From
		a.ChainID = handle.ChainID
	})

	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.ConfirmationTimeout)
	defer cancel()
	if err := c.gateway.AwaitConfirmation(waitCtx, handle); err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, sale.ErrTransactionTimedOut) {
			return fmt.Errorf("%w: %w", sale.ErrTransactionTimedOut, err)
		}
		return classify(err, sale.ErrChainWrite)
	}
	return nil
}

// classify wraps errors outside the sale taxonomy so every failure carries a code.
func classify(err error, fallback *sale.Error) error {
	if sale.ClassOf(err) != sale.ClassUnknown {
		return err
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

func (c *Controller) transition(id string, to State, update func(*Attempt)) {
	c.mu.Lock()
	a := c.attempts[id]
	from := a.State
	a.State = to
	a.UpdatedAt = c.now()
	if update != nil {
		update(a)
	}
	tokenID := a.TokenID
	c.mu.Unlock()

	c.logger.Debug("Attempt transition",
		zap.String("attempt_id", id),
		zap.Stringer("token_id", tokenID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
}

func (c *Controller) settle(ctx context.Context, id string, err error, elapsed time.Duration) {
	c.mu.Lock()
	a := c.attempts[id]
	if err != nil {
		a.fail(err, c.now())
	} else {
		a.State = StateSucceeded
		a.UpdatedAt = c.now()
	}
	delete(c.inFlight, a.TokenID)
	c.retire(id)
	out := a.clone()
	listeners := make([]func(sale.TokenID), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	metrics.AttemptsInFlight.Dec()
	c.record(ctx, out, elapsed)

	for _, fn := range listeners {
		fn(out.TokenID)
	}
}

// retire marks id settled and evicts the oldest settled attempts. Caller holds c.mu.
func (c *Controller) retire(id string) {
	c.settled = append(c.settled, id)
	for len(c.settled) > retainedAttempts {
		old := c.settled[0]
		c.settled = c.settled[1:]
		delete(c.attempts, old)
		delete(c.done, old)
	}
}

// record counts and persists a settled attempt.
func (c *Controller) record(ctx context.Context, a *Attempt, elapsed time.Duration) {
	outcome := a.outcome()
	metrics.AttemptsTotal.WithLabelValues(outcome).Inc()
	metrics.AttemptDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	fields := []zap.Field{
		zap.String("attempt_id", a.ID),
		zap.Stringer("token_id", a.TokenID),
		zap.Uint64("amount_units", a.AmountUnits),
		zap.String("state", string(a.State)),
		zap.Duration("duration", elapsed),
	}
	if a.TxHash != nil {
		fields = append(fields, zap.String("tx_hash", a.TxHash.Hex()))
	}
	switch {
	case a.State == StateSucceeded:
		c.logger.Info("Purchase succeeded", fields...)
	case a.ErrorClass == sale.ClassChain || a.ErrorClass == sale.ClassUnknown:
		metrics.ErrorsTotal.WithLabelValues("trade", a.ErrorClass.String()).Inc()
		c.logger.Error("Purchase failed", append(fields, zap.String("error_code", a.ErrorCode), zap.String("error", a.ErrorMessage))...)
	default:
		c.logger.Info("Purchase not completed", append(fields, zap.String("error_code", a.ErrorCode), zap.String("error", a.ErrorMessage))...)
	}

	if c.store == nil {
		return
	}
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := c.store.SaveAttempt(sctx, a); err != nil {
		metrics.ErrorsTotal.WithLabelValues("store", "save_attempt").Inc()
		c.logger.Error("Failed to persist attempt outcome", zap.String("attempt_id", a.ID), zap.Error(err))
	}
}

// AttemptStatus returns the current state of attempt id.
func (c *Controller) AttemptStatus(ctx context.Context, id string) (*Attempt, error) {
	c.mu.Lock()
	a, ok := c.attempts[id]
	var out *Attempt
	if ok {
		out = a.clone()
	}
	c.mu.Unlock()
	if ok {
		return out, nil
	}

	if c.store == nil {
		return nil, ErrAttemptNotFound
	}
	return c.store.GetAttempt(ctx, id)
}

// Wait blocks until attempt id is settled or ctx is done.
func (c *Controller) Wait(ctx context.Context, id string) (*Attempt, error) {
	c.mu.Lock()
	done, ok := c.done[id]
	c.mu.Unlock()
	if !ok {
		return c.AttemptStatus(ctx, id)
	}

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return c.AttemptStatus(ctx, id)
}

// History returns settled attempts for tokenID, newest first.
func (c *Controller) History(ctx context.Context, tokenID sale.TokenID, limit int) ([]*Attempt, error) {
	if limit <= 0 || limit > c.cfg.HistoryLimit {
		limit = c.cfg.HistoryLimit
	}
	if c.store != nil {
		return c.store.ListAttempts(ctx, tokenID, limit)
	}

	c.mu.Lock()
	var out []*Attempt
	for _, id := range c.settled {
		if a, ok := c.attempts[id]; ok && a.TokenID == tokenID {
			out = append(out, a.clone())
		}
	}
	c.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// OnSnapshotInvalidated registers fn to be called with the token of every settled
// attempt that reached the chain. The returned func unsubscribes.
func (c *Controller) OnSnapshotInvalidated(fn func(sale.TokenID)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Close rejects new submissions and waits for in-flight attempts to settle.
func (c *Controller) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	waited := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(waited)
	}()

	select {
	case <-waited:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("attempts still in flight: %w", ctx.Err())
	}
}
