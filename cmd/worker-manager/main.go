// cmd/worker-manager/main.go
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"footprint-workers/internal/analysis"
	"footprint-workers/internal/api"
	"footprint-workers/internal/common/aws"
	"footprint-workers/internal/common/camunda"
	"footprint-workers/internal/common/config"
	"footprint-workers/internal/common/llm"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/observability"
	"footprint-workers/internal/notify"
	"footprint-workers/internal/pipeline"
	"footprint-workers/pkg/registry"

	cf "footprint-workers/internal/workers/footprint/calculate-footprint"
	sre "footprint-workers/internal/workers/communication/send-results-email"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("environment", cfg.App.Environment),
		zap.Bool("camunda", cfg.Camunda.Enabled),
		zap.Bool("server", cfg.Server.Enabled),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Analysis generator ---
	var textGen llm.TextGenerator
	if cfg.UseExternalGenerator() {
		textGen = llm.NewOpenAIClient(&llm.Config{
			BaseURL:     cfg.APIs.OpenAI.BaseURL,
			APIKey:      cfg.APIs.OpenAI.APIKey,
			Model:       cfg.APIs.OpenAI.Model,
			Temperature: cfg.APIs.OpenAI.Temperature,
			MaxTokens:   cfg.APIs.OpenAI.MaxTokens,
			Timeout:     config.GetDuration(cfg.APIs.OpenAI.Timeout),
		})
		zapLog.Info("External text generation enabled", zap.String("model", cfg.APIs.OpenAI.Model))
	} else {
		zapLog.Info("External text generation disabled, using deterministic analysis")
	}

	generator := analysis.NewGenerator(analysis.Config{
		UseExternalGenerator: textGen != nil,
	}, textGen, log)
	orchestrator := pipeline.NewOrchestrator(generator, obs, log)

	// --- Notifications ---
	var sesClient notify.SESService
	var snsClient notify.SNSService
	if cfg.Notifications.Email.Enabled || cfg.Notifications.SMS.Enabled {
		clients, err := aws.NewClients(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("aws clients failed", zap.Error(err))
		}
		sesClient = clients.SES
		snsClient = clients.SNS
		zapLog.Info("AWS notification clients initialized", zap.String("region", cfg.Notifications.AWS.Region))
	}

	notifier := notify.NewNotifier(notify.Config{
		EmailEnabled: cfg.Notifications.Email.Enabled,
		SMSEnabled:   cfg.Notifications.SMS.Enabled,
		FromEmail:    cfg.Notifications.Email.FromEmail,
		ResultsURL:   cfg.Notifications.Email.ResultsURL,
	}, sesClient, snsClient, log)

	// --- Zeebe workers ---
	var zeebeClient *camunda.Client
	var jobWorkers []worker.JobWorker
	if cfg.Camunda.Enabled {
		zeebeClient, err = camunda.NewClient(ctx, cfg.Camunda.BrokerAddress, zapLog)
		if err != nil {
			zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
		}
		zapLog.Info("Zeebe client connected successfully")

		zbClient := zeebeClient.GetClient()
		reg := loadRegistry(zapLog)

		if config.IsWorkerEnabled(cfg, cf.TaskType) {
			wcfg := config.GetWorkerConfig(cfg, cf.TaskType)
			checkRegistered(reg, cf.TaskType, zapLog)
			handler := cf.NewHandler(cf.LoadConfig(wcfg), orchestrator.WithSource("zeebe"), log)
			jobWorkers = append(jobWorkers, camunda.StartWorker(zbClient, cf.TaskType, wcfg, handler.Handle, zapLog))
		}

		if config.IsWorkerEnabled(cfg, sre.TaskType) {
			wcfg := config.GetWorkerConfig(cfg, sre.TaskType)
			checkRegistered(reg, sre.TaskType, zapLog)
			handler := sre.NewHandler(sre.LoadConfig(wcfg), notifier, log)
			jobWorkers = append(jobWorkers, camunda.StartWorker(zbClient, sre.TaskType, wcfg, handler.Handle, zapLog))
		}

		zapLog.Info("Workers registered", zap.Int("count", len(jobWorkers)))
	}

	// --- HTTP API, health & metrics ---
	var server *http.Server
	if cfg.Server.Enabled {
		var ready api.ReadinessFunc
		if zeebeClient != nil {
			ready = zeebeClient.HealthCheck
		}

		handler := api.NewHandler(orchestrator.WithSource("http"), notifier, ready, log)
		router := api.NewRouter(handler, cfg.Server.AllowedOrigin)
		router.Handle("/metrics", promhttp.Handler())

		timeout := config.GetDuration(cfg.Server.Timeout)
		server = &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		}

		go func() {
			zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				zapLog.Error("HTTP server failed", zap.Error(err))
			}
		}()
	}

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("Error shutting down HTTP server", zap.Error(err))
		}
	}

	for _, w := range jobWorkers {
		if w != nil {
			w.Close()
		}
	}

	if zeebeClient != nil {
		if err := zeebeClient.Close(); err != nil {
			zapLog.Error("Error closing Zeebe client", zap.Error(err))
		}
	}

	zapLog.Info("Worker manager stopped gracefully")
}

// loadRegistry reads the activity registry. A missing or invalid registry
// is logged and otherwise ignored.
func loadRegistry(log *zap.Logger) *registry.ActivityRegistry {
	reg, err := registry.LoadRegistry(registry.DefaultPath)
	if err != nil {
		log.Warn("activity registry not loaded", zap.String("path", registry.DefaultPath), zap.Error(err))
		return nil
	}
	if err := reg.Validate(); err != nil {
		log.Warn("activity registry invalid", zap.Error(err))
		return nil
	}
	log.Info("activity registry loaded", zap.String("version", reg.Version), zap.Int("activities", len(reg.Activities)))
	return reg
}

func checkRegistered(reg *registry.ActivityRegistry, taskType string, log *zap.Logger) {
	if reg == nil {
		return
	}
	activity, ok := reg.Find(taskType)
	if !ok {
		log.Warn("worker has no registry entry", zap.String("taskType", taskType))
		return
	}
	log.Debug("worker registry entry",
		zap.String("taskType", taskType),
		zap.String("version", activity.Version),
		zap.String("status", activity.ImplementationStatus),
	)
}
