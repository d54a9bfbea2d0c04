package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hinatanotsu-agelab/timecard-management-app/internal/config"
)

func NewRouter(
	cfg *config.Config,
	organizationHandler OrganizationHandler,
	shiftHandler ShiftHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timecard-management-app"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Employee-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/organizations", func(r chi.Router) {
			r.Post("/", organizationHandler.Create)

			r.Route("/{orgID}", func(r chi.Router) {
				r.Get("/", organizationHandler.Get)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", organizationHandler.GetSettings)
					r.Put("/", organizationHandler.UpdateSettings)
				})

				r.Route("/members", func(r chi.Router) {
					r.Get("/", organizationHandler.ListMembers)
					r.Route("/{employeeID}", func(r chi.Router) {
						r.Get("/", organizationHandler.GetMember)
						r.Put("/override", organizationHandler.PutOverride)
					})
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListMonth)
					r.Post("/", shiftHandler.Submit)
					r.Route("/{shiftID}", func(r chi.Router) {
						r.Get("/", shiftHandler.Get)
						r.Put("/", shiftHandler.Update)
						r.Delete("/", shiftHandler.Delete)
						r.Post("/approve", shiftHandler.Approve)
						r.Post("/reject", shiftHandler.Reject)
						r.Get("/breakdown", payrollHandler.ShiftBreakdown)
					})
				})

				r.Route("/payroll", func(r chi.Router) {
					r.Get("/", payrollHandler.MonthlySummary)
					r.Route("/export", func(r chi.Router) {
						r.Get("/detail", payrollHandler.ExportDetail)
						r.Get("/members", payrollHandler.ExportMembers)
					})
				})
			})
		})
	})
	return r
}
