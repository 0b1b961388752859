// Package http exposes the application over echo. Handlers translate
// request bodies into commands and queries and domain errors into the
// shared envelope; business rules live entirely below this layer.
package http

import (
	"net/http"
	"time"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	submitOrderHandler       commands.SubmitOrderCommandHandler
	setStatusHandler         commands.SetOrderStatusCommandHandler
	setDeliveredHandler      commands.SetLineDeliveredCommandHandler
	setDeliveredCountHandler commands.SetLineDeliveredCountCommandHandler
	chargeOrderHandler       commands.ChargeOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler

	activeOrdersHandler    queries.GetActiveOrdersQueryHandler
	productsHandler        queries.GetProductsQueryHandler
	paymentsHandler        queries.GetPaymentsQueryHandler
	paymentsSummaryHandler queries.GetPaymentsSummaryQueryHandler

	auth *FinanceAuth
	ws   echo.HandlerFunc
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	setStatusHandler commands.SetOrderStatusCommandHandler,
	setDeliveredHandler commands.SetLineDeliveredCommandHandler,
	setDeliveredCountHandler commands.SetLineDeliveredCountCommandHandler,
	chargeOrderHandler commands.ChargeOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	productsHandler queries.GetProductsQueryHandler,
	paymentsHandler queries.GetPaymentsQueryHandler,
	paymentsSummaryHandler queries.GetPaymentsSummaryQueryHandler,
	auth *FinanceAuth,
	ws echo.HandlerFunc,
) *Server {
	return &Server{
		submitOrderHandler:       submitOrderHandler,
		setStatusHandler:         setStatusHandler,
		setDeliveredHandler:      setDeliveredHandler,
		setDeliveredCountHandler: setDeliveredCountHandler,
		chargeOrderHandler:       chargeOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		activeOrdersHandler:      activeOrdersHandler,
		productsHandler:          productsHandler,
		paymentsHandler:          paymentsHandler,
		paymentsSummaryHandler:   paymentsSummaryHandler,
		auth:                     auth,
		ws:                       ws,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.PATCH("/orders/:id/status", s.SetOrderStatus)
	api.PATCH("/orders/:id/items/:productId/delivered", s.SetLineDelivered)
	api.PATCH("/orders/:id/items/:productId/delivered-count", s.SetLineDeliveredCount)
	api.POST("/orders/:id/charge", s.ChargeOrder)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	finance := api.Group("/finance")
	finance.POST("/login", s.auth.Login)
	finance.POST("/logout", s.auth.Logout)
	finance.GET("/me", s.auth.Me)
	finance.GET("/payments", s.GetPayments, s.auth.Middleware)
	finance.GET("/summary", s.GetPaymentsSummary, s.auth.Middleware)

	e.GET("/ws/orders", s.ws)
}

// SubmitOrder handles POST /api/orders.
func (s *Server) SubmitOrder(c echo.Context) error {
	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, entry := range req.Items {
		productID, err := kernel.UUIDFromString(entry.ProductID)
		if err != nil {
			return writeError(c, errs.NewValueIsInvalidErrorWithCause("product_id", err))
		}
		items = append(items, order.Item{ProductID: productID, Quantity: entry.Quantity})
	}

	cmd, err := commands.NewSubmitOrderCommand(req.TableNumber, items)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.submitOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, view)
}

// GetActiveOrders handles GET /api/orders.
func (s *Server) GetActiveOrders(c echo.Context) error {
	board, err := s.activeOrdersHandler.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, board)
}

// SetOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req SetStatusRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.setStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// SetLineDelivered handles PATCH /api/orders/:id/items/:productId/delivered.
func (s *Server) SetLineDelivered(c echo.Context) error {
	orderID, productID, err := orderLineParams(c)
	if err != nil {
		return writeError(c, err)
	}

	var req SetDeliveredRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetLineDeliveredCommand(orderID, productID, req.Delivered)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.setDeliveredHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// SetLineDeliveredCount handles PATCH /api/orders/:id/items/:productId/delivered-count.
func (s *Server) SetLineDeliveredCount(c echo.Context) error {
	orderID, productID, err := orderLineParams(c)
	if err != nil {
		return writeError(c, err)
	}

	var req SetDeliveredCountRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetLineDeliveredCountCommand(orderID, productID, req.Count)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.setDeliveredCountHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// ChargeOrder handles POST /api/orders/:id/charge.
func (s *Server) ChargeOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req ChargeOrderRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewChargeOrderCommand(orderID, method, req.Tip)
	if err != nil {
		return writeError(c, err)
	}

	receipt, err := s.chargeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, receipt)
}

// GetProducts handles GET /api/products.
func (s *Server) GetProducts(c echo.Context) error {
	catalog, err := s.productsHandler.Handle(c.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, catalog)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateProductCommand(req.Name, req.Price, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, view)
}

// UpdateProduct handles PATCH /api/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	productID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req UpdateProductRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.Name, req.Price, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.updateProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// DeleteProduct handles DELETE /api/products/:id.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.deleteProductHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetPayments handles GET /api/finance/payments.
func (s *Server) GetPayments(c echo.Context) error {
	from, to, err := timeWindowParams(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetPaymentsQuery(from, to)
	if err != nil {
		return writeError(c, err)
	}

	payments, err := s.paymentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, payments)
}

// GetPaymentsSummary handles GET /api/finance/summary.
func (s *Server) GetPaymentsSummary(c echo.Context) error {
	from, to, err := timeWindowParams(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetPaymentsSummaryQuery(from, to)
	if err != nil {
		return writeError(c, err)
	}

	summary, err := s.paymentsSummaryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

func orderLineParams(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	productID, err := kernel.UUIDFromString(c.Param("productId"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	return orderID, productID, nil
}

func timeWindowParams(c echo.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		from = &parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		to = &parsed
	}

	return from, to, nil
}
