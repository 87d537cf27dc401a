package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vemio-dashboard/internal/config"

	dashboardRepoPg "vemio-dashboard/internal/dashboard/adapters/postgres"
	dashboardUsecase "vemio-dashboard/internal/dashboard/core/usecase"

	opportunitiesHttp "vemio-dashboard/internal/opportunities/adapters/http/fiber"
	opportunitiesRepoPg "vemio-dashboard/internal/opportunities/adapters/postgres"
	opportunitiesUsecase "vemio-dashboard/internal/opportunities/core/usecase"

	viewsHttp "vemio-dashboard/internal/views/adapters/http/fiber"
	viewsMemory "vemio-dashboard/internal/views/adapters/memory"
	viewsUsecase "vemio-dashboard/internal/views/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "vemio-dashboard/docs"
)

// @title VEMIO Dashboard API
// @version 1.0
// @description Inventory optimization dashboard: view sessions, optimal parameters, KPIs and action plans.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	dashboardDB := dashboardRepoPg.NewSQLDB(db)
	opportunitiesDB := opportunitiesRepoPg.NewSQLDB(db)

	// Repositories
	parametersRepository := dashboardRepoPg.NewParametersRepository(dashboardDB)
	planRepository := opportunitiesRepoPg.NewPlanRepository(opportunitiesDB)
	viewStore := viewsMemory.NewViewStore(cfg.ViewIdleTTL)

	// Usecases
	fetchParametersUC := dashboardUsecase.NewFetchParametersUseCase(parametersRepository)
	viewUC := viewsUsecase.NewViewUseCase(viewStore, fetchParametersUC, cfg.ParametersFetchTimeout)
	opportunitiesUC := opportunitiesUsecase.NewOpportunitiesUseCase(planRepository)

	// Idle view eviction
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go viewStore.RunJanitor(janitorCtx, time.Minute)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// views endpoints
	viewsHandler := viewsHttp.NewViewHandler(viewUC)
	app.Post("/views", viewsHandler.OpenView)
	app.Get("/views/:id", viewsHandler.GetView)
	app.Delete("/views/:id", viewsHandler.CloseView)
	app.Put("/views/:id/tab", viewsHandler.SelectTab)
	app.Put("/views/:id/period", viewsHandler.SetPeriod)
	app.Put("/views/:id/opportunities/mode", viewsHandler.SetOpportunitiesMode)
	app.Post("/views/:id/filters", viewsHandler.SetFilter)
	app.Post("/views/:id/navigate", viewsHandler.Navigate)
	app.Get("/views/:id/filters/options", viewsHandler.GetFilterOptions)
	app.Get("/views/:id/dashboard", viewsHandler.GetDashboard)
	app.Delete("/views/:id/dashboard/error", viewsHandler.DismissError)
	app.Get("/views/:id/export", viewsHandler.Export)

	// opportunities endpoints
	opportunitiesHandler := opportunitiesHttp.NewOpportunitiesHandler(opportunitiesUC)
	app.Get("/opportunities", opportunitiesHandler.ListOpportunities)
	app.Get("/opportunities/analysis", opportunitiesHandler.GetAnalysis)
	app.Post("/opportunities/:id/plans/simulate", opportunitiesHandler.SimulatePlan)
	app.Post("/opportunities/:id/plans", opportunitiesHandler.ApprovePlan)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	// in-flight parameter fetches are bounded by their own timeout
	stopJanitor()
	viewUC.Wait()

	log.Println("server exiting")
}
