package cmd

import (
	"time"

	"bookstore/internal/adapters/out/auth"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	timeoutPolicy *services.TimeoutPolicy
	tokenProvider *auth.JWTTokenProvider
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	timeoutPolicy, err := services.NewTimeoutPolicy(
		time.Duration(config.OrderTimeoutSeconds) * time.Second)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		timeoutPolicy: timeoutPolicy,
		tokenProvider: auth.NewJWTTokenProvider(
			time.Duration(config.TokenLifetimeSeconds) * time.Second),
	}, nil
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.accountUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.accountUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateUnregisterAccountCommandHandler() commands.UnregisterAccountCommandHandler {
	return commands.NewUnregisterAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateAddFundsCommandHandler() commands.AddFundsCommandHandler {
	return commands.NewAddFundsCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	return commands.NewCreateStoreCommandHandler(c.catalogUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateAddBookCommandHandler() commands.AddBookCommandHandler {
	return commands.NewAddBookCommandHandler(c.catalogUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	return commands.NewAddStockCommandHandler(c.catalogUoWFactory(), c.tokenProvider)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.fullUoWFactory(), c.timeoutPolicy)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReceiveOrderCommandHandler() commands.ReceiveOrderCommandHandler {
	return commands.NewReceiveOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderTimeoutCommandHandler() commands.SetOrderTimeoutCommandHandler {
	return commands.NewSetOrderTimeoutCommandHandler(c.timeoutPolicy)
}

func (c *CompositionRoot) CreateCompactLedgerCommandHandler() commands.CompactLedgerCommandHandler {
	return commands.NewCompactLedgerCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
