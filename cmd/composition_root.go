package cmd

import (
	"log/slog"

	"comanda/internal/adapters/in/ws"
	"comanda/internal/adapters/out/postgres"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one UoW factory, one hub,
// and a constructor per use case handler.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *ws.Hub
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        ws.NewHub(logger),
	}
}

// Hub returns the display broadcast hub.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetLineDeliveredCommandHandler() commands.SetLineDeliveredCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetLineDeliveredCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetLineDeliveredCountCommandHandler() commands.SetLineDeliveredCountCommandHandler {
	var f commands.OrderingUoWFactory = FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetLineDeliveredCountCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateChargeOrderCommandHandler() commands.ChargeOrderCommandHandler {
	var f commands.ChargingUoWFactory = FuncChargingUoWFactory(func() commands.ChargingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChargeOrderCommandHandler(f, services.NewOrderBill(), c.hub)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentsSummaryQueryHandler() queries.GetPaymentsSummaryQueryHandler {
	return queries.NewGetPaymentsSummaryQueryHandler(c.gormDB)
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncChargingUoWFactory func() commands.ChargingUoW

func (f FuncChargingUoWFactory) Create() commands.ChargingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
