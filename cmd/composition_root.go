package cmd

import (
	httpadapter "purchasing/internal/adapters/in/http"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/ports"
	"purchasing/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() *commands.EditOrderCommandHandler {
	h := commands.NewEditOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() *commands.ApproveOrderCommandHandler {
	h := commands.NewApproveOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() *commands.RejectOrderCommandHandler {
	h := commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRelayOutboxCommandHandler(f, publisher)
	return &h
}

func (c *CompositionRoot) CreateResolveActorQueryHandler() queries.ResolveActorQueryHandler {
	return queries.NewResolveActorQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrderQueryHandler() queries.ExportOrderQueryHandler {
	return queries.NewExportOrderQueryHandler(c.CreateGetOrderQueryHandler())
}

// CreateRouter wires every use case into the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		EditOrder:    c.CreateEditOrderCommandHandler(),
		DeleteOrder:  c.CreateDeleteOrderCommandHandler(),
		ApproveOrder: c.CreateApproveOrderCommandHandler(),
		RejectOrder:  c.CreateRejectOrderCommandHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListMyOrders: c.CreateListMyOrdersQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		ExportOrder:  c.CreateExportOrderQueryHandler(),
	})

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		JWTSecret: []byte(c.config.AuthJWTSecret),
		Resolver:  c.CreateResolveActorQueryHandler(),
		Logger:    c.logger,
	})
}

// CreateJobManager returns the background jobs. Without a publisher the
// outbox is left to accumulate and no job runs.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) (*jobs.JobManager, error) {
	if publisher == nil {
		return jobs.NewJobManager(), nil
	}

	relayJob, err := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.config.OutboxRelaySchedule,
		c.config.OutboxRelayBatchSize,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relayJob), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
