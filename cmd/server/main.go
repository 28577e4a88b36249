package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/renopilot/backend/internal/config"
	"github.com/renopilot/backend/internal/handler"
	"github.com/renopilot/backend/internal/logging"
	"github.com/renopilot/backend/internal/repository"
	"github.com/renopilot/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	paintTypeRepo := repository.NewPgPaintTypeRepository(pool)
	surfaceTypeRepo := repository.NewPgSurfaceTypeRepository(pool)
	paintQualityRepo := repository.NewPgPaintQualityRepository(pool)
	surfaceConditionRepo := repository.NewPgSurfaceConditionRepository(pool)
	paintDataRepo := repository.NewPgPaintDataRepository(pool)
	laborRateRepo := repository.NewPgLaborRateRepository(pool)
	paintColorRepo := repository.NewPgPaintColorRepository(pool)

	referenceService := service.NewReferenceService(
		paintTypeRepo, surfaceTypeRepo, paintQualityRepo,
		surfaceConditionRepo, paintDataRepo, laborRateRepo, paintColorRepo,
	)
	estimateService := service.NewEstimateService(
		paintDataRepo, surfaceConditionRepo, laborRateRepo, cfg.DefaultRegion,
	)
	reportService := service.NewReportService(estimateService)

	h := handler.New(pool, cfg.FrontendURL)
	calculateHandler := handler.NewCalculateHandler(estimateService)
	referenceHandler := handler.NewReferenceHandler(referenceService)
	adminHandler := handler.NewAdminHandler(referenceService)
	reportHandler := handler.NewReportHandler(reportService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/calculate/area", calculateHandler.Area)
	mux.HandleFunc("POST /api/calculate/validate-dimensions", calculateHandler.ValidateDimensions)
	mux.HandleFunc("POST /api/calculate/surface-cost", calculateHandler.SurfaceCost)
	mux.HandleFunc("POST /api/calculate/project-cost", calculateHandler.ProjectCost)
	mux.HandleFunc("GET /api/calculate/reference-data", referenceHandler.ReferenceData)
	mux.HandleFunc("GET /api/calculate/paint-data", referenceHandler.PaintData)

	mux.HandleFunc("POST /api/reports/project", reportHandler.Project)

	mux.HandleFunc("GET /api/admin/paint-types", adminHandler.ListPaintTypes)
	mux.HandleFunc("POST /api/admin/paint-types", adminHandler.SavePaintType)
	mux.HandleFunc("DELETE /api/admin/paint-types/{id}", adminHandler.DeletePaintType)
	mux.HandleFunc("GET /api/admin/surface-types", adminHandler.ListSurfaceTypes)
	mux.HandleFunc("POST /api/admin/surface-types", adminHandler.SaveSurfaceType)
	mux.HandleFunc("DELETE /api/admin/surface-types/{id}", adminHandler.DeleteSurfaceType)
	mux.HandleFunc("GET /api/admin/paint-qualities", adminHandler.ListPaintQualities)
	mux.HandleFunc("POST /api/admin/paint-qualities", adminHandler.SavePaintQuality)
	mux.HandleFunc("DELETE /api/admin/paint-qualities/{id}", adminHandler.DeletePaintQuality)
	mux.HandleFunc("GET /api/admin/surface-conditions", adminHandler.ListSurfaceConditions)
	mux.HandleFunc("POST /api/admin/surface-conditions", adminHandler.SaveSurfaceCondition)
	mux.HandleFunc("DELETE /api/admin/surface-conditions/{id}", adminHandler.DeleteSurfaceCondition)
	mux.HandleFunc("GET /api/admin/paint-data", adminHandler.ListPaintData)
	mux.HandleFunc("POST /api/admin/paint-data", adminHandler.SavePaintData)
	mux.HandleFunc("DELETE /api/admin/paint-data/{id}", adminHandler.DeletePaintData)
	mux.HandleFunc("GET /api/admin/labor-rates", adminHandler.ListLaborRates)
	mux.HandleFunc("POST /api/admin/labor-rates", adminHandler.SaveLaborRate)
	mux.HandleFunc("DELETE /api/admin/labor-rates/{id}", adminHandler.DeleteLaborRate)
	mux.HandleFunc("GET /api/admin/paint-colors", adminHandler.ListPaintColors)
	mux.HandleFunc("POST /api/admin/paint-colors", adminHandler.CreatePaintColor)
	mux.HandleFunc("DELETE /api/admin/paint-colors/{id}", adminHandler.DeletePaintColor)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
