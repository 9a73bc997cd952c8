package components

import (
	"time"

	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/config"
	"hospital-ops/internal/usecase"
	"hospital-ops/internal/usecase/commands"
	"hospital-ops/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	// Hospital-local time decides ticket days and drug expiry.
	func(cfg config.Config) *time.Location {
		return cfg.Hospital.Location()
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewTheatreCommands,
		commands.NewSurgeryCommands,
		commands.NewTicketCommands,
		commands.NewDrugCommands,
		commands.NewEmergencyCommands,
		commands.NewPatientCommands,
		commands.NewDepartmentCommands,
		commands.NewDisplayCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTheatreQueries,
		queries.NewSurgeryQueries,
		queries.NewTicketQueries,
		func(rs queries.DrugReadStore, clk clock.Clock, cfg config.Config, loc *time.Location) queries.DrugQueries {
			return queries.NewDrugQueries(rs, clk, cfg.Hospital.DrugExpiryWindow, loc)
		},
		queries.NewEmergencyQueries,
		queries.NewPatientQueries,
		queries.NewDepartmentQueries,
		queries.NewDisplayQueries,
		queries.NewDisplayFeedQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
