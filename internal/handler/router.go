package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"hospital-ops/internal/domain/user"
	"hospital-ops/internal/handler/api"
	"hospital-ops/internal/handler/middleware"
	"hospital-ops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth       *api.AuthHandler
	Theatre    *api.TheatreHandler
	Surgery    *api.SurgeryHandler
	Ticket     *api.TicketHandler
	Drug       *api.DrugHandler
	Emergency  *api.EmergencyHandler
	Patient    *api.PatientHandler
	Department *api.DepartmentHandler
	Display    *api.DisplayHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

// RegisterValidators adds the custom binding rules and reports json field names in
// validation errors.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("notblank", validators.NotBlank)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	roles := authMiddleware.RequireRoles
	admin := roles(user.RoleAdmin)
	clinicians := roles(user.RoleAdmin, user.RoleDoctor)
	wardStaff := roles(user.RoleAdmin, user.RoleDoctor, user.RoleNurse)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		theatres := apiGroup.Group("/operation-theatres")
		theatres.Use(authMiddleware.RequireAuth())
		{
			addRoutes(theatres, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Theatre.List},
				{Method: http.MethodPost, Path: "", Handler: h.Theatre.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:otId", Handler: h.Theatre.Get},
				{Method: http.MethodGet, Path: "/:otId/schedule", Handler: h.Theatre.GetSchedule},
				{Method: http.MethodPost, Path: "/:otId/schedule", Handler: h.Theatre.Schedule, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodPatch, Path: "/:otId/status", Handler: h.Theatre.ChangeStatus, Mw: []gin.HandlerFunc{wardStaff}},
				{Method: http.MethodPatch, Path: "/:otId/schedule/:entryId/status", Handler: h.Theatre.ChangeEntryStatus, Mw: []gin.HandlerFunc{wardStaff}},
				{Method: http.MethodPost, Path: "/:otId/emergency", Handler: h.Theatre.DeclareEmergency, Mw: []gin.HandlerFunc{clinicians}},
			})
		}

		surgeries := apiGroup.Group("/surgeries")
		surgeries.Use(authMiddleware.RequireAuth())
		{
			addRoutes(surgeries, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Surgery.List},
				{Method: http.MethodPost, Path: "", Handler: h.Surgery.Create, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Surgery.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Surgery.Update, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Surgery.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		tokens := apiGroup.Group("/tokens")
		tokens.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tokens, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Ticket.List},
				{Method: http.MethodPost, Path: "", Handler: h.Ticket.Issue},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Ticket.ChangeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Ticket.Delete, Mw: []gin.HandlerFunc{roles(user.RoleAdmin, user.RoleReceptionist)}},
			})
		}

		pharmacy := roles(user.RoleAdmin, user.RolePharmacist)
		drugs := apiGroup.Group("/drugs")
		drugs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drugs, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Drug.List},
				{Method: http.MethodPost, Path: "", Handler: h.Drug.Create, Mw: []gin.HandlerFunc{pharmacy}},
				{Method: http.MethodGet, Path: "/low-stock", Handler: h.Drug.LowStock},
				{Method: http.MethodGet, Path: "/expiring", Handler: h.Drug.Expiring},
				{Method: http.MethodGet, Path: "/valuation", Handler: h.Drug.Valuation},
				{Method: http.MethodGet, Path: "/:drugId", Handler: h.Drug.Get},
				{Method: http.MethodPatch, Path: "/:drugId/quantity", Handler: h.Drug.AdjustQuantity, Mw: []gin.HandlerFunc{pharmacy}},
			})
		}

		emergency := apiGroup.Group("/emergency")
		emergency.Use(authMiddleware.RequireAuth())
		{
			addRoutes(emergency, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Emergency.List},
				{Method: http.MethodPost, Path: "", Handler: h.Emergency.Create, Mw: []gin.HandlerFunc{wardStaff}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Emergency.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Emergency.Update, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodPost, Path: "/:id/treatment", Handler: h.Emergency.AddTreatment, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodPut, Path: "/:id/vital-signs", Handler: h.Emergency.RecordVitals, Mw: []gin.HandlerFunc{wardStaff}},
			})
		}

		patients := apiGroup.Group("/patients")
		patients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(patients, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Patient.List},
				{Method: http.MethodPost, Path: "", Handler: h.Patient.Create, Mw: []gin.HandlerFunc{roles(user.RoleAdmin, user.RoleDoctor, user.RoleReceptionist)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Patient.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Patient.Update, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodPost, Path: "/:id/medical-history", Handler: h.Patient.AddMedicalRecord, Mw: []gin.HandlerFunc{clinicians}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Patient.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		departments := apiGroup.Group("/departments")
		departments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(departments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Department.List},
				{Method: http.MethodPost, Path: "", Handler: h.Department.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Department.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Department.Update, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Department.Delete, Mw: []gin.HandlerFunc{admin}},
			})
		}

		display := apiGroup.Group("/display")
		{
			// Boards in waiting rooms poll these without a session.
			addRoutes(display, []route{
				{Method: http.MethodGet, Path: "/feed/queue", Handler: h.Display.QueueFeed},
				{Method: http.MethodGet, Path: "/feed/theatres", Handler: h.Display.TheatreFeed},
			})

			boardEditors := roles(user.RoleAdmin, user.RoleReceptionist)
			authRequired := display.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Display.List},
				{Method: http.MethodPost, Path: "", Handler: h.Display.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodGet, Path: "/department/:department", Handler: h.Display.ListByDepartment},
				{Method: http.MethodGet, Path: "/:displayId", Handler: h.Display.Get},
				{Method: http.MethodPost, Path: "/:displayId/content", Handler: h.Display.AddContent, Mw: []gin.HandlerFunc{boardEditors}},
				{Method: http.MethodDelete, Path: "/:displayId/content", Handler: h.Display.ClearContent, Mw: []gin.HandlerFunc{boardEditors}},
				{Method: http.MethodPatch, Path: "/:displayId/settings", Handler: h.Display.UpdateSettings, Mw: []gin.HandlerFunc{admin}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
