package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	placed := testOrder(t, "alice", kernel.TimestampNow())

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, placed.ID()).Return(testEvent(t, placed.ID(), order.Created), nil).Once()
	ledger.On("Append", ctx, mock.MatchedBy(func(e order.StatusEvent) bool {
		return e.Status() == order.Canceled
	})).Return(testEvent(t, placed.ID(), order.Canceled), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("alice", placed.ID())
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	ledger.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCanceled_IsNoOpSuccess(t *testing.T) {
	ctx := t.Context()
	orderID := "alice_store-1_x"

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, orderID).Return(testEvent(t, orderID, order.Canceled), nil).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("alice", orderID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AlreadyPaid_Fails(t *testing.T) {
	ctx := t.Context()
	orderID := "alice_store-1_x"

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, orderID).Return(testEvent(t, orderID, order.Paid), nil).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("alice", orderID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "already paid")
}

func TestCancelOrderCommandHandler_Handle_WrongCaller_Unauthorized(t *testing.T) {
	ctx := t.Context()

	placed := testOrder(t, "alice", kernel.TimestampNow())

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, placed.ID()).Return(testEvent(t, placed.ID(), order.Created), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, placed.ID()).Return(placed, nil).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("mallory", placed.ID())
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestCancelOrderCommandHandler_Handle_HeaderGone_StillCancels(t *testing.T) {
	ctx := t.Context()
	orderID := "alice_store-1_x"

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, orderID).Return(testEvent(t, orderID, order.TimedOut), nil).Once()
	ledger.On("Append", ctx, mock.MatchedBy(func(e order.StatusEvent) bool {
		return e.Status() == order.Canceled
	})).Return(testEvent(t, orderID, order.Canceled), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)
	uow.On("OrderRepository").Return(orderRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("alice", orderID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	ledger.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_HeaderGone_SettledOrder_NotFound(t *testing.T) {
	// A missing header with a non-timed-out latest event means the order
	// settled: shipping and receipt must never be overwritten by a
	// cancel, least of all from a caller who is not the buyer.
	settled := []order.Status{order.Shipped, order.Receiving, order.Received}

	for _, status := range settled {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			orderID := "alice_store-1_x"

			ledger := new(MockStatusLedger)
			ledger.On("Latest", ctx, orderID).Return(testEvent(t, orderID, status), nil).Once()

			orderRepo := new(MockOrderRepository)
			orderRepo.On("Get", ctx, orderID).
				Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

			uow := new(MockUoW)
			uow.On("StatusLedger").Return(ledger)
			uow.On("OrderRepository").Return(orderRepo)

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewCancelOrderCommandHandler(factory)
			cmd, err := commands.NewCancelOrderCommand("mallory", orderID)
			require.NoError(t, err)

			err = handler.Handle(ctx, cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrObjectNotFound)

			ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_UnknownOrder_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := "missing"

	ledger := new(MockStatusLedger)
	ledger.On("Latest", ctx, orderID).
		Return(order.StatusEvent{}, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	uow := new(MockUoW)
	uow.On("StatusLedger").Return(ledger)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	cmd, err := commands.NewCancelOrderCommand("alice", orderID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
