package components

import (
	"hospital-ops/internal/handler"
	"hospital-ops/internal/handler/api"
	"hospital-ops/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTheatreHandler,
		api.NewSurgeryHandler,
		api.NewTicketHandler,
		api.NewDrugHandler,
		api.NewEmergencyHandler,
		api.NewPatientHandler,
		api.NewDepartmentHandler,
		api.NewDisplayHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
