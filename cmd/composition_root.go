package cmd

import (
	"log/slog"

	httpin "ustabar/internal/adapters/in/http"
	"ustabar/internal/adapters/out/natsnotify"
	"ustabar/internal/adapters/out/postgres"
	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/application/usecases/queries"
	"ustabar/internal/pkg/initdata"

	"github.com/nats-io/nats.go"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   *natsnotify.Notifier
	verifier   *initdata.Verifier
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	natsConn *nats.Conn,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   natsnotify.NewNotifier(natsConn, logger),
		verifier:   initdata.NewVerifier(config.BotToken),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.verifier,
		c.CreateRegisterAccountCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateAcceptApplicationCommandHandler(),
		c.CreateApplyToOrderCommandHandler(),
		c.CreateSkipOrderCommandHandler(),
		c.CreateGetWorkerFeedQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetOrderApplicationsQueryHandler(),
		c.CreateGetAccountByTelegramIDQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptApplicationCommandHandler() commands.AcceptApplicationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptApplicationCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateApplyToOrderCommandHandler() commands.ApplyToOrderCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyToOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSkipOrderCommandHandler() commands.SkipOrderCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSkipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkerFeedQueryHandler() queries.GetWorkerFeedQueryHandler {
	return queries.NewGetWorkerFeedQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderApplicationsQueryHandler() queries.GetOrderApplicationsQueryHandler {
	return queries.NewGetOrderApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountByTelegramIDQueryHandler() queries.GetAccountByTelegramIDQueryHandler {
	return queries.NewGetAccountByTelegramIDQueryHandler(c.gormDB)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDecisionUoWFactory func() commands.DecisionUoW

func (f FuncDecisionUoWFactory) Create() commands.DecisionUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
