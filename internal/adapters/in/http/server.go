package http

import (
	"encoding/json"
	"io"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server exposes the ordering use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	contract *APIContract

	// Command handlers
	submitOrderHandler     commands.SubmitOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	advanceOrderHandler    commands.AdvanceOrderStatusCommandHandler
	assignOrderHandler     commands.AssignOrderCommandHandler
	updateInventoryHandler commands.UpdateInventoryCommandHandler

	// Query handlers
	orderSummaryHandler        queries.GetOrderSummaryQueryHandler
	trackOrderHandler          queries.TrackOrderQueryHandler
	orderDetailsHandler        queries.GetOrderDetailsQueryHandler
	assignedOrdersHandler      queries.GetAssignedOrdersQueryHandler
	deliveryHistoryHandler     queries.GetDeliveryHistoryQueryHandler
	availableDeliveriesHandler queries.ListAvailableDeliveriesQueryHandler
	restaurantOrdersHandler    queries.ListRestaurantOrdersQueryHandler
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	SubmitOrder     commands.SubmitOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	AdvanceOrder    commands.AdvanceOrderStatusCommandHandler
	AssignOrder     commands.AssignOrderCommandHandler
	UpdateInventory commands.UpdateInventoryCommandHandler

	OrderSummary        queries.GetOrderSummaryQueryHandler
	TrackOrder          queries.TrackOrderQueryHandler
	OrderDetails        queries.GetOrderDetailsQueryHandler
	AssignedOrders      queries.GetAssignedOrdersQueryHandler
	DeliveryHistory     queries.GetDeliveryHistoryQueryHandler
	AvailableDeliveries queries.ListAvailableDeliveriesQueryHandler
	RestaurantOrders    queries.ListRestaurantOrdersQueryHandler
}

func NewServer(contract *APIContract, h Handlers) *Server {
	return &Server{
		contract:                   contract,
		submitOrderHandler:         h.SubmitOrder,
		cancelOrderHandler:         h.CancelOrder,
		advanceOrderHandler:        h.AdvanceOrder,
		assignOrderHandler:         h.AssignOrder,
		updateInventoryHandler:     h.UpdateInventory,
		orderSummaryHandler:        h.OrderSummary,
		trackOrderHandler:          h.TrackOrder,
		orderDetailsHandler:        h.OrderDetails,
		assignedOrdersHandler:      h.AssignedOrders,
		deliveryHistoryHandler:     h.DeliveryHistory,
		availableDeliveriesHandler: h.AvailableDeliveries,
		restaurantOrdersHandler:    h.RestaurantOrders,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the actor middleware,
// plus the unauthenticated health check and API documentation.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/api/v1/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPIDocument)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", ActorMiddleware(jwtSecret))

	api.POST("/restaurants/:slug/orders", s.SubmitOrder)
	api.GET("/orders/:ref", s.GetOrderDetails)
	api.GET("/orders/:ref/tracking", s.TrackOrder)
	api.POST("/orders/:ref/cancel", s.CancelOrder)
	api.POST("/orders/:ref/assignment", s.AssignOrder)
	api.POST("/orders/:ref/kitchen", s.AdvanceToKitchen)
	api.POST("/orders/:ref/ready", s.MarkReadyForDelivery)
	api.POST("/orders/:ref/pickup", s.ConfirmPickup)
	api.POST("/orders/:ref/transport", s.ConfirmTransport)
	api.POST("/orders/:ref/delivery", s.ConfirmDelivery)

	api.GET("/deliveries/assigned", s.GetAssignedOrders)
	api.GET("/deliveries/history", s.GetDeliveryHistory)
	api.GET("/deliveries/available", s.ListAvailableDeliveries)

	api.GET("/restaurant/orders", s.ListRestaurantOrders)
	api.PUT("/menu-items/:id/inventory", s.UpdateInventory)
}

// SubmitOrder handles POST /api/v1/restaurants/{slug}/orders.
func (s *Server) SubmitOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var slug string
	if err = bindPathParam(c, "slug", &slug); err != nil {
		return err
	}

	var body submitOrderRequest
	if err = s.bindBody(c, "SubmitOrderRequest", &body); err != nil {
		return err
	}

	items := make([]commands.CartItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.CartItem{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewSubmitOrderCommand(actor, slug, items)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	o, err := s.submitOrderHandler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusCreated, o)
}

// TrackOrder handles GET /api/v1/orders/{ref}/tracking.
func (s *Server) TrackOrder(c echo.Context) error {
	actor, ref, err := actorAndRef(c)
	if err != nil {
		return err
	}

	query, err := queries.NewTrackOrderQuery(actor, ref)
	if err != nil {
		return err
	}

	summary, err := s.trackOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponse(summary))
}

// GetOrderDetails handles GET /api/v1/orders/{ref}.
func (s *Server) GetOrderDetails(c echo.Context) error {
	actor, ref, err := actorAndRef(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailsQuery(actor, ref)
	if err != nil {
		return err
	}

	summary, err := s.orderDetailsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponse(summary))
}

// CancelOrder handles POST /api/v1/orders/{ref}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, ref, err := actorAndRef(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actor, ref)
	if err != nil {
		return err
	}

	o, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, o)
}

// AssignOrder handles POST /api/v1/orders/{ref}/assignment. Without a body
// the caller assigns themself.
func (s *Server) AssignOrder(c echo.Context) error {
	actor, ref, err := actorAndRef(c)
	if err != nil {
		return err
	}

	var body assignOrderRequest
	if c.Request().ContentLength != 0 {
		if err = s.bindBody(c, "AssignOrderRequest", &body); err != nil {
			return err
		}
	}

	cmd, err := commands.NewAssignOrderCommand(actor, ref, body.DeliveryPerson)
	if err != nil {
		return err
	}

	o, err := s.assignOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, o)
}

func (s *Server) AdvanceToKitchen(c echo.Context) error {
	return s.advance(c, services.TransitionStartCooking)
}

func (s *Server) MarkReadyForDelivery(c echo.Context) error {
	return s.advance(c, services.TransitionMarkReady)
}

func (s *Server) ConfirmPickup(c echo.Context) error {
	return s.advance(c, services.TransitionPickUp)
}

func (s *Server) ConfirmTransport(c echo.Context) error {
	return s.advance(c, services.TransitionTransport)
}

func (s *Server) ConfirmDelivery(c echo.Context) error {
	return s.advance(c, services.TransitionDeliver)
}

func (s *Server) advance(c echo.Context, transition services.Transition) error {
	actor, ref, err := actorAndRef(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(actor, ref, transition)
	if err != nil {
		return err
	}

	o, err := s.advanceOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.respondWithOrder(c, http.StatusOK, o)
}

// GetAssignedOrders handles GET /api/v1/deliveries/assigned.
func (s *Server) GetAssignedOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetAssignedOrdersQuery(actor)
	if err != nil {
		return err
	}

	summaries, err := s.assignedOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetDeliveryHistory handles GET /api/v1/deliveries/history.
func (s *Server) GetDeliveryHistory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryHistoryQuery(actor)
	if err != nil {
		return err
	}

	summaries, err := s.deliveryHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// ListAvailableDeliveries handles GET /api/v1/deliveries/available.
func (s *Server) ListAvailableDeliveries(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListAvailableDeliveriesQuery(actor)
	if err != nil {
		return err
	}

	summaries, err := s.availableDeliveriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// ListRestaurantOrders handles GET /api/v1/restaurant/orders?status=A,B.
func (s *Server) ListRestaurantOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var names []string
	if err = runtime.BindQueryParameter("form", false, false, "status", c.QueryParams(), &names); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	statuses := make([]order.Status, 0, len(names))
	for _, name := range names {
		status, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return parseErr
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListRestaurantOrdersQuery(actor, statuses...)
	if err != nil {
		return err
	}

	summaries, err := s.restaurantOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// UpdateInventory handles PUT /api/v1/menu-items/{id}/inventory.
func (s *Server) UpdateInventory(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var itemID uint64
	if err = bindPathParam(c, "id", &itemID); err != nil {
		return err
	}

	var body updateInventoryRequest
	if err = s.bindBody(c, "UpdateInventoryRequest", &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateInventoryCommand(actor, itemID, body.Inventory, body.Available)
	if err != nil {
		return err
	}

	item, err := s.updateInventoryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// respondWithOrder renders the committed state of o as a summary.
func (s *Server) respondWithOrder(c echo.Context, status int, o *order.Order) error {
	ref, err := kernel.OrderRefFromID(o.ID())
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderSummaryQuery(ref)
	if err != nil {
		return err
	}

	summary, err := s.orderSummaryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toOrderSummaryResponse(summary))
}

func (s *Server) bindBody(c echo.Context, schema string, dest any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read request body").SetInternal(err)
	}
	if err = s.contract.ValidateBody(schema, body); err != nil {
		return err
	}
	if err = json.Unmarshal(body, dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	return nil
}

func bindPathParam(c echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid path parameter "+name).SetInternal(err)
	}
	return nil
}

func actorAndRef(c echo.Context) (kernel.Actor, kernel.OrderRef, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.Actor{}, kernel.OrderRef{}, err
	}

	var raw string
	if err = bindPathParam(c, "ref", &raw); err != nil {
		return kernel.Actor{}, kernel.OrderRef{}, err
	}

	ref, err := kernel.ParseOrderRef(raw)
	if err != nil {
		return kernel.Actor{}, kernel.OrderRef{}, err
	}
	return actor, ref, nil
}
