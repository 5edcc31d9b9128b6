package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/caresuite/labops-backend-go/internal/handler/http/middleware"
	"github.com/caresuite/labops-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	deductionHandler DeductionHandler,
	payrollHandler PayrollHandler,
	staffHandler StaffHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "labops-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/daily", attendanceHandler.GetDaily)
				r.Get("/monthly", attendanceHandler.GetMonthly)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)

				r.Route("/settings", func(r chi.Router) {
					r.Get("/", attendanceHandler.GetSettings)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Put("/", attendanceHandler.SaveSettings)
					})
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", attendanceHandler.ManualAdd)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)

				r.Route("/{staffID}", func(r chi.Router) {
					r.Get("/", staffHandler.GetByID)
					r.Get("/leaves", leaveHandler.List)
					r.Get("/deductions", deductionHandler.List)
					r.Get("/salaries", payrollHandler.ListSalaries)
					r.Get("/payroll", payrollHandler.GetPayroll)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/leaves", leaveHandler.Add)
						r.Post("/deductions", deductionHandler.Add)
						r.Post("/salaries", payrollHandler.SaveSalary)
					})
				})
			})
		})
	})
	return r
}
