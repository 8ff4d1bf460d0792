package commands

import (
	"context"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an unpaid order. Cancellation is
// idempotent: a second cancel of the same order is a no-op success.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the ledger state and appends a CANCELED event. A paid
// order cannot be canceled: money already moved. When the header still
// exists the caller must be its buyer. When the header is already gone,
// cancellation is permitted only over a TIMED_OUT latest event; any
// other headerless state (shipped, received) belongs to a settled order
// and stays untouched.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	ledger := uow.StatusLedger()

	latest, err := ledger.Latest(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if latest.Status() == order.Paid {
		return errs.NewPreconditionFailedError("already paid", cmd.OrderID())
	}
	if latest.Status() == order.Canceled {
		return nil
	}

	header, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if !header.IsPlacedBy(cmd.CallerID()) {
			return errs.NewUnauthorizedError("order is not placed by caller")
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// Header already gone: only an expired order may still be
		// canceled. Anything else settled and belongs to the seller flow.
		if latest.Status() != order.TimedOut {
			return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
		}
	default:
		return err
	}

	canceled, err := order.NewStatusEvent(
		cmd.OrderID(), order.Canceled, kernel.TimestampNow(), latest.UserID(), latest.StoreID())
	if err != nil {
		return err
	}

	_, err = ledger.Append(ctx, canceled)
	return err
}
