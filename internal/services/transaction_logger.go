package services

import (
	"context"
	"log/slog"
	"time"

	"finance-tracker/internal/models"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the request's correlation ID
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

type TransactionLogger struct {
	logger *slog.Logger
}

func NewTransactionLogger(logger *slog.Logger) TransactionLoggerInterface {
	return &TransactionLogger{
		logger: logger,
	}
}

func (tl *TransactionLogger) LogTransactionCreated(ctx context.Context, transaction *models.Transaction) {
	tl.logger.InfoContext(ctx, "transaction created",
		slog.String("event_type", "transaction_created"),
		slog.Uint64("transaction_id", uint64(transaction.ID)),
		slog.Uint64("account_id", uint64(transaction.AccountID)),
		slog.Uint64("category_id", uint64(transaction.CategoryID)),
		slog.String("amount", transaction.Amount.StringFixed(2)),
		slog.String("txn_date", transaction.TxnDate.Format(time.DateOnly)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (tl *TransactionLogger) LogTransactionUpdated(ctx context.Context, transaction *models.Transaction) {
	tl.logger.InfoContext(ctx, "transaction updated",
		slog.String("event_type", "transaction_updated"),
		slog.Uint64("transaction_id", uint64(transaction.ID)),
		slog.Uint64("account_id", uint64(transaction.AccountID)),
		slog.Uint64("category_id", uint64(transaction.CategoryID)),
		slog.String("amount", transaction.Amount.StringFixed(2)),
		slog.String("txn_date", transaction.TxnDate.Format(time.DateOnly)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (tl *TransactionLogger) LogTransactionDeleted(ctx context.Context, transactionID uint) {
	tl.logger.InfoContext(ctx, "transaction deleted",
		slog.String("event_type", "transaction_deleted"),
		slog.Uint64("transaction_id", uint64(transactionID)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (tl *TransactionLogger) LogCategoryTotalsComputed(ctx context.Context, query models.CategoryTotalsQuery, categories int, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "category_totals_computed"),
		slog.Int("categories", categories),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if query.HasRange() {
		start, end := query.Bounds()
		attrs = append(attrs,
			slog.String("start_date", start.Format(time.DateOnly)),
			slog.String("end_date", end.Format(time.DateOnly)),
		)
	}

	tl.logger.LogAttrs(ctx, slog.LevelInfo, "category totals computed", attrs...)
}

func (tl *TransactionLogger) LogOperationFailed(ctx context.Context, operation string, err error) {
	tl.logger.WarnContext(ctx, "transaction operation failed",
		slog.String("event_type", "transaction_operation_failed"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
