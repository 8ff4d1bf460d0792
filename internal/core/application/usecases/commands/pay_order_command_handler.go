package commands

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/domain/services"
	"bookstore/internal/pkg/errs"
)

// PayOrderCommandHandler settles an order: stock is deducted per line,
// the buyer is debited, the seller is credited, the PAID event is
// appended and the header is deleted.
//
// The handler never opens a transaction. Each step is an individually
// atomic storage operation, ordered so resource consumption (stock,
// funds) commits before the order is closed. A failure mid-sequence
// leaves the completed steps in place; the visible order state is always
// whatever the ledger last recorded.
type PayOrderCommandHandler struct {
	uowFactory    UoWFactory
	timeoutPolicy *services.TimeoutPolicy
}

// NewPayOrderCommandHandler creates a handler for order settlement.
func NewPayOrderCommandHandler(
	uowFactory UoWFactory,
	timeoutPolicy *services.TimeoutPolicy,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:    uowFactory,
		timeoutPolicy: timeoutPolicy,
	}
}

// Handle processes the settlement command. The fail points, in order:
// unknown or foreign order, expired order (appending TIMED_OUT), an
// already-terminal ledger state, credential mismatch, unresolvable
// store owner, insufficient funds, and per-line stock shortage.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	paidOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !paidOrder.IsPlacedBy(cmd.BuyerID()) {
		return errs.NewUnauthorizedError("order is not placed by caller")
	}

	ledger := uow.StatusLedger()

	if h.timeoutPolicy.Expired(paidOrder.CreatedAt(), time.Now()) {
		if err = h.expire(ctx, uow, paidOrder); err != nil {
			return err
		}
		return errs.NewPreconditionFailedError("order not active", cmd.OrderID())
	}

	latest, err := ledger.Latest(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if latest.Status() == order.TimedOut || latest.Status() == order.Canceled {
		return errs.NewPreconditionFailedError("order not active", cmd.OrderID())
	}

	buyer, err := uow.AccountRepository().Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}
	if err = buyer.Authenticate(cmd.Password()); err != nil {
		return err
	}

	sellerStore, err := uow.StoreRepository().Get(ctx, paidOrder.StoreID())
	if err != nil {
		return err
	}

	total := paidOrder.Total()
	if buyer.Balance().LessThan(total) {
		return errs.NewPreconditionFailedError("insufficient funds", cmd.OrderID())
	}

	// Conditional decrements are the sole oversell guard: placement only
	// observed stock.
	inventoryRepo := uow.InventoryRepository()
	for _, line := range paidOrder.Lines() {
		if err = inventoryRepo.DeductStock(ctx, paidOrder.StoreID(), line.BookID(), line.Count()); err != nil {
			return err
		}
	}

	accountRepo := uow.AccountRepository()
	if err = accountRepo.Debit(ctx, cmd.BuyerID(), total); err != nil {
		return err
	}
	if err = accountRepo.Credit(ctx, sellerStore.OwnerID(), total); err != nil {
		return err
	}

	paid, err := order.NewStatusEvent(
		cmd.OrderID(), order.Paid, kernel.TimestampNow(), cmd.BuyerID(), paidOrder.StoreID())
	if err != nil {
		return err
	}
	if _, err = ledger.Append(ctx, paid); err != nil {
		return err
	}

	// Deleting the header makes re-payment impossible; from here on the
	// ledger is the only record of the order.
	return uow.OrderRepository().Delete(ctx, cmd.OrderID())
}

// expire appends a TIMED_OUT event unless the ledger already records a
// terminal event or PAID. A PAID latest means a settlement consumed the
// funds even if its header delete never landed, so the order must not be
// expired over it. Racing observers may append TIMED_OUT more than once;
// duplicates only pad the ledger and are pruned by the compaction job.
func (h *PayOrderCommandHandler) expire(ctx context.Context, uow UoW, expired *order.Order) error {
	ledger := uow.StatusLedger()

	latest, err := ledger.Latest(ctx, expired.ID())
	if err == nil && (latest.Status().IsTerminal() || latest.Status() == order.Paid) {
		return nil
	}
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	timedOut, err := order.NewStatusEvent(
		expired.ID(), order.TimedOut, kernel.TimestampNow(), expired.BuyerID(), expired.StoreID())
	if err != nil {
		return err
	}

	_, err = ledger.Append(ctx, timedOut)
	return err
}
