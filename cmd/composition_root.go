package cmd

import (
	"log/slog"
	"time"

	"foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/eventbus"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	publisher := eventbus.NewInProcessEventPublisher(logger, prometheus.DefaultRegisterer)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

// EventPublisher exposes the publisher so main can register subscriptions
// before the server starts taking traffic.
func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.publisher
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkReadyForPickupCommandHandler() commands.MarkReadyForPickupCommandHandler {
	return commands.NewMarkReadyForPickupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateFailOrderCommandHandler() commands.FailOrderCommandHandler {
	return commands.NewFailOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.inventoryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateSaleStockCommandHandler() commands.SaleStockCommandHandler {
	return commands.NewSaleStockCommandHandler(c.inventoryUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderListQueryHandler() queries.GetOrderListQueryHandler {
	return queries.NewGetOrderListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryLogsQueryHandler() queries.GetInventoryLogsQueryHandler {
	return queries.NewGetInventoryLogsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every command and query handler the REST API dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ConfirmOrder:       c.CreateConfirmOrderCommandHandler(),
		StartPreparation:   c.CreateStartPreparationCommandHandler(),
		MarkReadyForPickup: c.CreateMarkReadyForPickupCommandHandler(),
		CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		FailOrder:          c.CreateFailOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		AdjustStock:        c.CreateAdjustStockCommandHandler(),
		SaleStock:          c.CreateSaleStockCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderList:       c.CreateGetOrderListQueryHandler(),
		GetStock:           c.CreateGetStockQueryHandler(),
		GetInventoryLogs:   c.CreateGetInventoryLogsQueryHandler(),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(staleOrderAge time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.CreateCancelOrderCommandHandler(),
		staleOrderAge,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}
