// Package http is the inbound HTTP adapter. Handlers are thin: decode
// the request, build a command or query, call the application handler,
// map the errs kind to a status code.
package http

import (
	"errors"
	"net/http"
	"time"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerAccountHandler   commands.RegisterAccountCommandHandler
	loginHandler             commands.LoginCommandHandler
	logoutHandler            commands.LogoutCommandHandler
	changePasswordHandler    commands.ChangePasswordCommandHandler
	unregisterAccountHandler commands.UnregisterAccountCommandHandler
	addFundsHandler          commands.AddFundsCommandHandler
	createStoreHandler       commands.CreateStoreCommandHandler
	addBookHandler           commands.AddBookCommandHandler
	addStockHandler          commands.AddStockCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler
	shipOrderHandler         commands.ShipOrderCommandHandler
	receiveOrderHandler      commands.ReceiveOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	setOrderTimeoutHandler   commands.SetOrderTimeoutCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerAccountHandler commands.RegisterAccountCommandHandler,
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	unregisterAccountHandler commands.UnregisterAccountCommandHandler,
	addFundsHandler commands.AddFundsCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	addBookHandler commands.AddBookCommandHandler,
	addStockHandler commands.AddStockCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	receiveOrderHandler commands.ReceiveOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setOrderTimeoutHandler commands.SetOrderTimeoutCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		registerAccountHandler:   registerAccountHandler,
		loginHandler:             loginHandler,
		logoutHandler:            logoutHandler,
		changePasswordHandler:    changePasswordHandler,
		unregisterAccountHandler: unregisterAccountHandler,
		addFundsHandler:          addFundsHandler,
		createStoreHandler:       createStoreHandler,
		addBookHandler:           addBookHandler,
		addStockHandler:          addStockHandler,
		placeOrderHandler:        placeOrderHandler,
		payOrderHandler:          payOrderHandler,
		shipOrderHandler:         shipOrderHandler,
		receiveOrderHandler:      receiveOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		setOrderTimeoutHandler:   setOrderTimeoutHandler,
		listOrdersHandler:        listOrdersHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	auth := e.Group("/auth")
	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.POST("/password", s.ChangePassword)
	auth.POST("/unregister", s.Unregister)

	seller := e.Group("/seller")
	seller.POST("/create_store", s.CreateStore)
	seller.POST("/add_book", s.AddBook)
	seller.POST("/add_stock_level", s.AddStock)
	seller.POST("/ship_order", s.ShipOrder)

	buyer := e.Group("/buyer")
	buyer.POST("/new_order", s.PlaceOrder)
	buyer.POST("/payment", s.PayOrder)
	buyer.POST("/add_funds", s.AddFunds)
	buyer.POST("/receive_order", s.ReceiveOrder)
	buyer.POST("/cancel_order", s.CancelOrder)
	buyer.GET("/orders", s.ListOrders)

	e.POST("/admin/order_timeout", s.SetOrderTimeout)
}

// Register handles POST /auth/register - creates a new account.
func (s *Server) Register(ctx echo.Context) error {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterAccountCommand(req.UserID, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid registration data: "+err.Error())
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// Login handles POST /auth/login - authenticates and returns a session token.
func (s *Server) Login(ctx echo.Context) error {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
		Terminal string `json:"terminal"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.UserID, req.Password, req.Terminal)
	if err != nil {
		return badRequest(ctx, "Invalid login data: "+err.Error())
	}

	token, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"token": token})
}

// Logout handles POST /auth/logout - invalidates the current session.
func (s *Server) Logout(ctx echo.Context) error {
	var req struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLogoutCommand(req.UserID, req.Token)
	if err != nil {
		return badRequest(ctx, "Invalid logout data: "+err.Error())
	}

	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangePassword handles POST /auth/password - replaces the credential.
func (s *Server) ChangePassword(ctx echo.Context) error {
	var req struct {
		UserID      string `json:"user_id"`
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(req.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		return badRequest(ctx, "Invalid password data: "+err.Error())
	}

	if err := s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// Unregister handles POST /auth/unregister - deletes an account.
func (s *Server) Unregister(ctx echo.Context) error {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUnregisterAccountCommand(req.UserID, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid unregistration data: "+err.Error())
	}

	if err := s.unregisterAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CreateStore handles POST /seller/create_store.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		Token   string `json:"token"`
		StoreID string `json:"store_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStoreCommand(req.UserID, req.Token, req.StoreID)
	if err != nil {
		return badRequest(ctx, "Invalid store data: "+err.Error())
	}

	if err := s.createStoreHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddBook handles POST /seller/add_book - lists a book in a store.
func (s *Server) AddBook(ctx echo.Context) error {
	var req struct {
		UserID     string `json:"user_id"`
		Token      string `json:"token"`
		StoreID    string `json:"store_id"`
		BookID     string `json:"book_id"`
		BookInfo   string `json:"book_info"`
		StockLevel int64  `json:"stock_level"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddBookCommand(
		req.UserID, req.Token, req.StoreID, req.BookID, req.BookInfo, req.StockLevel)
	if err != nil {
		return badRequest(ctx, "Invalid book data: "+err.Error())
	}

	if err := s.addBookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddStock handles POST /seller/add_stock_level.
func (s *Server) AddStock(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		Token   string `json:"token"`
		StoreID string `json:"store_id"`
		BookID  string `json:"book_id"`
		Count   int64  `json:"add_stock_level"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddStockCommand(req.UserID, req.Token, req.StoreID, req.BookID, req.Count)
	if err != nil {
		return badRequest(ctx, "Invalid stock data: "+err.Error())
	}

	if err := s.addStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipOrder handles POST /seller/ship_order.
func (s *Server) ShipOrder(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		OrderID string `json:"order_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShipOrderCommand(req.UserID, req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PlaceOrder handles POST /buyer/new_order - creates an order and returns its id.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		StoreID string `json:"store_id"`
		Books   []struct {
			ID    string `json:"id"`
			Count int64  `json:"count"`
		} `json:"books"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(req.Books))
	for _, book := range req.Books {
		items = append(items, commands.OrderItem{BookID: book.ID, Count: book.Count})
	}

	cmd, err := commands.NewPlaceOrderCommand(req.UserID, req.StoreID, items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"order_id": orderID})
}

// PayOrder handles POST /buyer/payment - settles an order.
func (s *Server) PayOrder(ctx echo.Context) error {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
		OrderID  string `json:"order_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPayOrderCommand(req.UserID, req.Password, req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AddFunds handles POST /buyer/add_funds.
func (s *Server) AddFunds(ctx echo.Context) error {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
		AddValue int64  `json:"add_value"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddFundsCommand(req.UserID, req.Password, req.AddValue)
	if err != nil {
		return badRequest(ctx, "Invalid funds data: "+err.Error())
	}

	if err := s.addFundsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReceiveOrder handles POST /buyer/receive_order.
func (s *Server) ReceiveOrder(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		OrderID string `json:"order_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReceiveOrderCommand(req.UserID, req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	if err := s.receiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelOrder handles POST /buyer/cancel_order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req struct {
		UserID  string `json:"user_id"`
		OrderID string `json:"order_id"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(req.UserID, req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListOrders handles GET /buyer/orders - returns a page of order history.
func (s *Server) ListOrders(ctx echo.Context) error {
	var req struct {
		UserID string `query:"user_id"`
		Status string `query:"status"`
		Page   int    `query:"page"`
		Size   int    `query:"size"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Size == 0 {
		req.Size = 20
	}

	query, err := queries.NewListOrdersQuery(req.UserID, order.Status(req.Status), req.Page, req.Size)
	if err != nil {
		return badRequest(ctx, "Invalid history request: "+err.Error())
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	orders := make([]orderSummary, 0, len(page.Orders))
	for _, summary := range page.Orders {
		orders = append(orders, orderSummary{
			OrderID:   summary.OrderID,
			Status:    summary.Status.String(),
			Timestamp: summary.Timestamp,
			StoreID:   summary.StoreID,
		})
	}

	return ctx.JSON(http.StatusOK, listOrdersResponse{
		Orders: orders,
		Total:  page.Total,
	})
}

// SetOrderTimeout handles POST /admin/order_timeout - tunes the order
// expiry window at runtime.
func (s *Server) SetOrderTimeout(ctx echo.Context) error {
	var req struct {
		TimeoutSeconds int64 `json:"timeout_seconds"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderTimeoutCommand(time.Duration(req.TimeoutSeconds) * time.Second)
	if err != nil {
		return badRequest(ctx, "Invalid timeout: "+err.Error())
	}

	if err := s.setOrderTimeoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderSummary struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	StoreID   string `json:"store_id"`
}

type listOrdersResponse struct {
	Orders []orderSummary `json:"orders"`
	Total  int64          `json:"total"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates the errs taxonomy into HTTP status codes.
func mapError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrPreconditionFailed):
		code = http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrTransientStorage):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
