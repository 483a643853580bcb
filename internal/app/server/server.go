package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/attendance"
	"hrms/internal/domain/company"
	"hrms/internal/domain/dashboard"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/payroll"
	"hrms/internal/domain/team"
	"hrms/internal/mirror"
	"hrms/internal/platform/config"
	"hrms/internal/platform/db"
	"hrms/internal/platform/metrics"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	authhandler "hrms/internal/transport/http/handlers/auth"
	companyhandler "hrms/internal/transport/http/handlers/company"
	dashboardhandler "hrms/internal/transport/http/handlers/dashboard"
	employeehandler "hrms/internal/transport/http/handlers/employee"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	mirrorhandler "hrms/internal/transport/http/handlers/mirror"
	payrollhandler "hrms/internal/transport/http/handlers/payroll"
	teamhandler "hrms/internal/transport/http/handlers/team"
	"hrms/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := metrics.New()

	employees := employee.NewStore(pool)
	companies := company.NewStore(pool)
	teams := team.NewStore(pool)
	att := attendance.NewStore(pool)
	leaves := leave.NewStore(pool)
	payrollSvc := payroll.NewService(employees, att, leaves, cfg.PayslipDir)
	dashboardSvc := dashboard.NewService(employees, att, leaves)

	mirrorEngine := mirror.NewEngine(mirror.NewPGReader(pool), cfg.MirrorDir,
		cfg.MirrorInterval, cfg.MirrorReadTimeout, collector)
	mirrorEngine.SyncAll(ctx)
	mirrorEngine.Start(ctx)
	defer mirrorEngine.Stop()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(employees, mirrorEngine, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		employeehandler.NewHandler(employees, mirrorEngine).RegisterRoutes(r)
		companyhandler.NewHandler(companies).RegisterRoutes(r)
		teamhandler.NewHandler(teams, mirrorEngine).RegisterRoutes(r)
		attendancehandler.NewHandler(att, mirrorEngine).RegisterRoutes(r)
		leavehandler.NewHandler(leaves, mirrorEngine).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollSvc).RegisterRoutes(r)
		dashboardhandler.NewHandler(dashboardSvc).RegisterRoutes(r)
		mirrorhandler.NewHandler(mirrorEngine).RegisterRoutes(r)
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("HRMS server listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
