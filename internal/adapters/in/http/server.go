// Package http implements the inbound HTTP adapter: driver-facing route
// endpoints on echo, the driver identity middleware, and the error mapping
// from domain errors to status codes.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"parcelroute/internal/core/application/usecases/commands"
	"parcelroute/internal/core/application/usecases/queries"
	"parcelroute/internal/core/domain/model/kernel"
	"parcelroute/internal/core/domain/model/parcel"
	"parcelroute/internal/core/ports"
	"parcelroute/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler dependencies, satisfied by the concrete command and query handlers.
type (
	// NextTargetSynchronizer reconciles a driver's target flags with the oracle.
	NextTargetSynchronizer interface {
		Handle(ctx context.Context, cmd commands.SyncNextTargetCommand) error
	}

	// PickupGroupCompleter completes an owner's pickup group.
	PickupGroupCompleter interface {
		Handle(ctx context.Context, cmd commands.CompletePickupGroupCommand) (commands.PickupGroupSummary, error)
	}

	// DeliveryCompleter completes a single delivery.
	DeliveryCompleter interface {
		Handle(ctx context.Context, cmd commands.CompleteDeliveryCommand) (commands.CompletedDelivery, error)
	}

	// PickupLister reads the driver's grouped pickup list.
	PickupLister interface {
		Handle(ctx context.Context, query queries.GetPickupListQuery) ([]queries.GetPickupListQueryResponse, error)
	}

	// DeliveryLister reads the driver's delivery list.
	DeliveryLister interface {
		Handle(ctx context.Context, query queries.GetDeliveryListQuery) ([]queries.GetDeliveryListQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
// List endpoints run the target synchronizer before reading, so the returned
// ordering always reflects the oracle's latest reachable recommendation.
type Server struct {
	// Command handlers
	syncNextTargetHandler      NextTargetSynchronizer
	completePickupGroupHandler PickupGroupCompleter
	completeDeliveryHandler    DeliveryCompleter

	// Query handlers
	getPickupListHandler   PickupLister
	getDeliveryListHandler DeliveryLister

	oracle ports.RouteOracle
	logger *slog.Logger
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	syncNextTargetHandler NextTargetSynchronizer,
	completePickupGroupHandler PickupGroupCompleter,
	completeDeliveryHandler DeliveryCompleter,
	getPickupListHandler PickupLister,
	getDeliveryListHandler DeliveryLister,
	oracle ports.RouteOracle,
	logger *slog.Logger,
) *Server {
	return &Server{
		syncNextTargetHandler:      syncNextTargetHandler,
		completePickupGroupHandler: completePickupGroupHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		getPickupListHandler:       getPickupListHandler,
		getDeliveryListHandler:     getDeliveryListHandler,
		oracle:                     oracle,
		logger:                     logger.With("component", "http"),
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/pickups/completion", s.GetPickupsCompletion)

	driver := api.Group("/driver", DriverIdentity())
	driver.GET("/pickups", s.GetPickups)
	driver.POST("/pickups/complete", s.CompletePickup)
	driver.GET("/deliveries", s.GetDeliveries)
	driver.POST("/deliveries/complete", s.CompleteDelivery)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetPickups handles GET /api/v1/driver/pickups - the grouped pickup list.
func (s *Server) GetPickups(ctx echo.Context) error {
	id, ok := driverID(ctx)
	if !ok {
		return s.respondError(ctx, errs.NewMissingCredentialError("X-Driver-Id"))
	}

	if err := s.syncTargets(ctx, parcel.LifecyclePickup, id, ""); err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPickupListQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	stops, err := s.getPickupListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]PickupStop, len(stops))
	for i, stop := range stops {
		response[i] = PickupStop{
			OwnerID:          stop.OwnerID.String(),
			ParcelCount:      stop.ParcelCount,
			Address:          stop.Address,
			DetailAddress:    stop.DetailAddress,
			PickupTimeWindow: stop.PickupTimeWindow,
			ProductName:      stop.ProductName,
			Status:           parcel.PickupPending.String(),
			IsNextTarget:     stop.IsNextTarget,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompletePickup handles POST /api/v1/driver/pickups/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	id, ok := driverID(ctx)
	if !ok {
		return s.respondError(ctx, errs.NewMissingCredentialError("X-Driver-Id"))
	}

	var req CompletePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if req.OwnerID == "" {
		return s.respondError(ctx, errs.NewValueIsRequiredError("ownerId"))
	}

	ownerID, err := kernel.UUIDFromString(req.OwnerID)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("ownerId", err))
	}

	cmd, err := commands.NewCompletePickupGroupCommand(ownerID, id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	summary, err := s.completePickupGroupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PickupCompletionSummary{
		OwnerID:          summary.OwnerID.String(),
		ParcelCount:      summary.ParcelCount,
		CompletedCount:   summary.CompletedCount,
		Address:          summary.Details.RecipientAddress,
		DetailAddress:    summary.Details.DetailAddress,
		PickupTimeWindow: summary.Details.PickupTimeWindow,
		ProductName:      summary.Details.ProductName,
		Status:           parcel.PickupCompleted.String(),
	})
}

// GetDeliveries handles GET /api/v1/driver/deliveries - the delivery list.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	id, ok := driverID(ctx)
	if !ok {
		return s.respondError(ctx, errs.NewMissingCredentialError("X-Driver-Id"))
	}

	credential := ctx.Request().Header.Get("Authorization")
	if err := s.syncTargets(ctx, parcel.LifecycleDelivery, id, credential); err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveryListQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	stops, err := s.getDeliveryListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]DeliveryStop, len(stops))
	for i, stop := range stops {
		response[i] = DeliveryStop{
			ParcelID:           stop.ParcelID.String(),
			TrackingCode:       stop.TrackingCode,
			RecipientAddress:   stop.RecipientAddress,
			DetailAddress:      stop.DetailAddress,
			DeliveryTimeWindow: stop.DeliveryTimeWindow,
			ProductName:        stop.ProductName,
			Status:             stop.Status,
			IsNextTarget:       stop.IsNextTarget,
			CompletedAt:        stop.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteDelivery handles POST /api/v1/driver/deliveries/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, ok := driverID(ctx)
	if !ok {
		return s.respondError(ctx, errs.NewMissingCredentialError("X-Driver-Id"))
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if req.TrackingCode == "" {
		return s.respondError(ctx, errs.NewValueIsRequiredError("trackingCode"))
	}

	code, err := parcel.NewTrackingCode(req.TrackingCode)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(code, id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	completed, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryCompletionView{
		ParcelID:           completed.ParcelID.String(),
		TrackingCode:       completed.TrackingCode.String(),
		RecipientAddress:   completed.Details.RecipientAddress,
		DetailAddress:      completed.Details.DetailAddress,
		DeliveryTimeWindow: completed.Details.DeliveryTimeWindow,
		ProductName:        completed.Details.ProductName,
		Status:             parcel.DeliveryCompleted.String(),
		CompletedAt:        completed.CompletedAt,
	})
}

// GetPickupsCompletion handles GET /api/v1/pickups/completion - proxies the
// oracle's plan-wide pickup completion check. An unreachable oracle degrades
// to "not completed" instead of failing the request.
func (s *Server) GetPickupsCompletion(ctx echo.Context) error {
	completed, err := s.oracle.AllPickupsCompleted(ctx.Request().Context())
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(),
			"Oracle all-pickups-completed check failed, reporting not completed", "error", err)
		completed = false
	}

	return ctx.JSON(http.StatusOK, CompletionStatus{Completed: completed})
}

// syncTargets runs the target synchronizer before a list read. A missing
// delivery credential is returned to the caller; any other failure is logged
// and the stale flags are served rather than failing the list.
func (s *Server) syncTargets(
	ctx echo.Context,
	lifecycle parcel.Lifecycle,
	id kernel.UUID,
	credential string,
) error {
	cmd, err := commands.NewSyncNextTargetCommand(lifecycle, id, credential)
	if err != nil {
		return err
	}

	if err = s.syncNextTargetHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrMissingCredential) {
			return err
		}
		s.logger.WarnContext(ctx.Request().Context(), "Target synchronization failed before list read",
			"lifecycle", lifecycle.String(),
			"driver_id", id.String(),
			"error", err)
	}

	return nil
}
