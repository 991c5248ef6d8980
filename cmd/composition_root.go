package cmd

import (
	"context"
	"log/slog"

	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory(), kernel.GenerateOrderNumber)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInventoryCommandHandler() commands.UpdateInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler(
	publisher ports.OrderEventPublisher,
) commands.RelayOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOrderEventsCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateJobManager(publisher ports.OrderEventPublisher) *jobs.JobManager {
	relay := c.CreateRelayOrderEventsCommandHandler(publisher)
	return jobs.NewJobManager(&relay, c.cfg.OutboxRelaySchedule, c.logger)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		SubmitOrder:     c.CreateSubmitOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		AdvanceOrder:    c.CreateAdvanceOrderStatusCommandHandler(),
		AssignOrder:     c.CreateAssignOrderCommandHandler(),
		UpdateInventory: c.CreateUpdateInventoryCommandHandler(),

		OrderSummary:        queries.NewGetOrderSummaryQueryHandler(c.gormDB),
		TrackOrder:          queries.NewTrackOrderQueryHandler(c.gormDB),
		OrderDetails:        queries.NewGetOrderDetailsQueryHandler(c.gormDB),
		AssignedOrders:      queries.NewGetAssignedOrdersQueryHandler(c.gormDB),
		DeliveryHistory:     queries.NewGetDeliveryHistoryQueryHandler(c.gormDB),
		AvailableDeliveries: queries.NewListAvailableDeliveriesQueryHandler(c.gormDB),
		RestaurantOrders:    queries.NewListRestaurantOrdersQueryHandler(c.gormDB),
	}
}

// CreateRouter wires the HTTP surface on top of the use cases.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	contract, err := httpin.LoadAPIContract(ctx)
	if err != nil {
		return nil, err
	}
	server := httpin.NewServer(contract, c.CreateHandlers())
	return httpin.NewRouter(server, c.logger, []byte(c.cfg.JWTSecret)), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
