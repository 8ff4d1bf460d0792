package queries

import (
	"context"
	"log/slog"

	"bookstore/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads a buyer's order history straight from the
// status ledger table. Uses direct SQL for optimal read performance in the
// CQRS pattern: the current status of each order is the ledger event with
// the highest (ts, seq) pair, resolved with DISTINCT ON.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the history query. Orders are sorted by the timestamp of
// their current event, newest first. The total is the count of distinct
// matching orders; when that aggregation fails the page length is reported
// instead, so a count failure never fails the whole request.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	baseSQL := `
		SELECT order_id, status, ts, store_id
		FROM (
			SELECT DISTINCT ON (order_id) order_id, status, ts, seq, store_id
			FROM order_status_events
			WHERE user_id = ?
			ORDER BY order_id, ts DESC, seq DESC
		) latest
	`
	args := []any{query.BuyerID()}

	if query.Status() != "" {
		baseSQL += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}

	pageSQL := baseSQL + ` ORDER BY ts DESC, seq DESC LIMIT ? OFFSET ?`
	pageArgs := append(args, query.Size(), (query.Page()-1)*query.Size())

	rows, err := h.db.WithContext(ctx).Raw(pageSQL, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var summary OrderSummary
		var status string

		err = rows.Scan(&summary.OrderID, &status, &summary.Timestamp, &summary.StoreID)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		summary.Status = order.Status(status)
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders: orders,
		Total:  h.countMatching(ctx, baseSQL, args, len(orders)),
	}, nil
}

func (h ListOrdersQueryHandler) countMatching(
	ctx context.Context, baseSQL string, args []any, pageLen int,
) int64 {
	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM (`+baseSQL+`) matched`, args...).
		Scan(&total).Error
	if err != nil {
		slog.Warn("order history count failed, reporting page length",
			"error", err)
		return int64(pageLen)
	}

	return total
}
