package trade

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adiboy-23/fun-pump/pkg/sale"
)

const serviceName = "TradeService"

const inputMaxLen = 32

// logService wraps Service with logging of every call
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the trade Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Submit(ctx context.Context, tokenID sale.TokenID, input string) (id string, err error) {
	start := time.Now()

	ls.logger.Info("Submit started",
		zap.String("service", serviceName),
		zap.String("method", "Submit"),
		zap.Stringer("token_id", tokenID),
		zap.String("input", truncateString(input, inputMaxLen)),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Warn("Submit rejected",
				zap.String("service", serviceName),
				zap.String("method", "Submit"),
				zap.Stringer("token_id", tokenID),
				zap.String("attempt_id", id),
				zap.String("error_code", sale.CodeOf(err)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Submit accepted",
			zap.String("service", serviceName),
			zap.String("method", "Submit"),
			zap.Stringer("token_id", tokenID),
			zap.String("attempt_id", id),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Submit(ctx, tokenID, input)
}

func (ls *logService) AttemptStatus(ctx context.Context, id string) (a *Attempt, err error) {
	defer func() {
		if err != nil {
			ls.logger.Debug("AttemptStatus failed",
				zap.String("service", serviceName),
				zap.String("attempt_id", id),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.AttemptStatus(ctx, id)
}

func (ls *logService) Wait(ctx context.Context, id string) (a *Attempt, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Wait"),
			zap.String("attempt_id", id),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Warn("Wait failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("Wait completed", append(fields, zap.String("state", string(a.State)))...)
	}()
	return ls.svc.Wait(ctx, id)
}

func (ls *logService) History(ctx context.Context, tokenID sale.TokenID, limit int) (out []*Attempt, err error) {
	defer func() {
		if err != nil {
			ls.logger.Error("History failed",
				zap.String("service", serviceName),
				zap.Stringer("token_id", tokenID),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.History(ctx, tokenID, limit)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
