package components

import (
	"hospital-ops/internal/infra/db"
	"hospital-ops/internal/infra/readstore"
	"hospital-ops/internal/infra/uow"
	"hospital-ops/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewTheatreReadStore,
			fx.As(new(queries.TheatreReadStore)),
		),
		fx.Annotate(
			readstore.NewSurgeryReadStore,
			fx.As(new(queries.SurgeryReadStore)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		fx.Annotate(
			readstore.NewDrugReadStore,
			fx.As(new(queries.DrugReadStore)),
		),
		fx.Annotate(
			readstore.NewEmergencyReadStore,
			fx.As(new(queries.EmergencyReadStore)),
		),
		fx.Annotate(
			readstore.NewPatientReadStore,
			fx.As(new(queries.PatientReadStore)),
		),
		fx.Annotate(
			readstore.NewDepartmentReadStore,
			fx.As(new(queries.DepartmentReadStore)),
		),
		fx.Annotate(
			readstore.NewDisplayReadStore,
			fx.As(new(queries.DisplayReadStore)),
		),
	),
)

// Repositories are created per transaction by the unit of work, so only the UoW is provided.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
