package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dendrolab/ringview/internal/app/delivery"
	"github.com/dendrolab/ringview/internal/app/repository"
	"github.com/dendrolab/ringview/internal/app/usecase"
	"github.com/dendrolab/ringview/internal/backend"
	"github.com/dendrolab/ringview/internal/config"
	"github.com/dendrolab/ringview/internal/middleware"
	"github.com/dendrolab/ringview/internal/storage"
	"github.com/dendrolab/ringview/internal/stream"
	"github.com/dendrolab/ringview/internal/utils/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("ws_base_url", cfg.WSBaseURL),
	)

	if err := os.MkdirAll(cfg.PreviewDir, 0755); err != nil {
		logger.Error("failed to create preview directory", zap.Error(err))
		os.Exit(1)
	}

	sessionRepo := repository.CreateSessionRepository(cfg.PreviewDir)
	backendClient := backend.NewClient(cfg.APIBaseURL)
	uploader := storage.NewUploader()
	listener := stream.NewListener(cfg.WSBaseURL, sessionRepo)
	analysisUsecase := usecase.CreateAnalysisUsecase(sessionRepo, backendClient, uploader, listener)
	analysisDelivery := delivery.CreateAnalysisDelivery(analysisUsecase)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	router.PathPrefix("/previews/").Handler(
		http.StripPrefix("/previews/", http.FileServer(http.Dir(cfg.PreviewDir))),
	).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()

	apiRouter.HandleFunc("/images", analysisDelivery.AddImages).Methods("POST")
	apiRouter.HandleFunc("/images", analysisDelivery.ClearImages).Methods("DELETE")
	apiRouter.HandleFunc("/images/{id}", analysisDelivery.RemoveImage).Methods("DELETE")
	apiRouter.HandleFunc("/images/{id}/coordinates", analysisDelivery.SetCoordinates).Methods("POST")

	apiRouter.HandleFunc("/session", analysisDelivery.GetSession).Methods("GET")
	apiRouter.HandleFunc("/session/current", analysisDelivery.SelectImage).Methods("POST")
	apiRouter.HandleFunc("/session/reset", analysisDelivery.ResetSession).Methods("POST")

	apiRouter.HandleFunc("/intake/errors", analysisDelivery.DismissIntakeErrors).Methods("DELETE")

	apiRouter.HandleFunc("/process/start", analysisDelivery.StartProcess).Methods("POST")
	apiRouter.HandleFunc("/process/status", analysisDelivery.ProcessStatus).Methods("GET")

	apiRouter.HandleFunc("/canvas", analysisDelivery.GetCanvas).Methods("GET")
	apiRouter.HandleFunc("/canvas/view", analysisDelivery.SetCanvasView).Methods("POST")
	apiRouter.HandleFunc("/canvas/pointer", analysisDelivery.CanvasPointer).Methods("POST")
	apiRouter.HandleFunc("/canvas/wheel", analysisDelivery.CanvasWheel).Methods("POST")
	apiRouter.HandleFunc("/canvas/zoom", analysisDelivery.CanvasZoom).Methods("POST")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
