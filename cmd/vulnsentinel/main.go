// VulnSentinel pipeline server. Runs the seven processing stages against the
// relational store and serves the operator API.
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

	"github.com/vulnsentinel/vulnsentinel/pkg/agent"
	"github.com/vulnsentinel/vulnsentinel/pkg/analyzer"
	"github.com/vulnsentinel/vulnsentinel/pkg/api"
	"github.com/vulnsentinel/vulnsentinel/pkg/classifier"
	"github.com/vulnsentinel/vulnsentinel/pkg/collector"
	"github.com/vulnsentinel/vulnsentinel/pkg/config"
	"github.com/vulnsentinel/vulnsentinel/pkg/cursor"
	"github.com/vulnsentinel/vulnsentinel/pkg/database"
	"github.com/vulnsentinel/vulnsentinel/pkg/github"
	"github.com/vulnsentinel/vulnsentinel/pkg/impact"
	"github.com/vulnsentinel/vulnsentinel/pkg/llm"
	"github.com/vulnsentinel/vulnsentinel/pkg/notify"
	"github.com/vulnsentinel/vulnsentinel/pkg/pipeline"
	"github.com/vulnsentinel/vulnsentinel/pkg/reachability"
	"github.com/vulnsentinel/vulnsentinel/pkg/scanner"
	"github.com/vulnsentinel/vulnsentinel/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	signer, err := cursor.NewSigner(cfg.CursorSecret)
	if err != nil {
		slog.Error("Failed to initialize cursor signer", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	libraryService := services.NewLibraryService(dbClient.Client, signer)
	projectService := services.NewProjectService(dbClient.Client, signer)
	eventService := services.NewEventService(dbClient.Client)
	vulnService := services.NewVulnService(dbClient.Client, signer)
	clientVulnService := services.NewClientVulnService(dbClient.Client)
	agentRunService := services.NewAgentRunService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. External clients
	ghClient := github.NewClient(cfg.GitHubToken)
	llmClient := llm.NewHTTPClient(cfg.LLM.BaseURL, cfg.LLM.APIKey)
	runner := agent.NewRunner(llmClient, agentRunService)

	callGraphStore := reachability.NewHTTPStore(cfg.CallGraph.BaseURL)

	// 5. Pipeline stages, in flow order
	scanStage := scanner.New(projectService, libraryService, ghClient, cfg.Scanner.Cutoff)
	collectStage := collector.New(libraryService, eventService, ghClient, cfg.Collector)
	classifyStage := classifier.New(eventService, libraryService, runner, ghClient)
	analyzeStage := analyzer.New(eventService, libraryService, vulnService, runner, ghClient)
	impactStage := impact.New(vulnService, projectService, clientVulnService)
	reachStage := reachability.New(clientVulnService, vulnService, libraryService, projectService,
		callGraphStore, ghClient, github.Slug)
	notifyStage := notify.New(clientVulnService, vulnService, libraryService, projectService,
		notify.NewSMTPSender(cfg.SMTP), cfg.SMTP.OverrideTo)

	scheduler := pipeline.NewScheduler([]pipeline.Stage{
		{Name: "scanner", Interval: cfg.Intervals.Scan, Run: scanStage.Run},
		{Name: "collector", Interval: cfg.Intervals.Collect, Run: collectStage.Run},
		{Name: "classifier", Interval: cfg.Intervals.Classify, Run: classifyStage.Run},
		{Name: "analyzer", Interval: cfg.Intervals.Analyze, Run: analyzeStage.Run},
		{Name: "impact", Interval: cfg.Intervals.Impact, Run: impactStage.Run},
		{Name: "reachability", Interval: cfg.Intervals.Reachability, Run: reachStage.Run},
		{Name: "notify", Interval: cfg.Intervals.Notify, Run: notifyStage.Run},
	})
	scheduler.Start(ctx)

	// 6. HTTP server
	server := api.NewServer(dbClient, libraryService, projectService, vulnService, clientVulnService)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("VulnSentinel started")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stages first, then the HTTP surface
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Pipeline stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Pipeline shutdown timeout exceeded, in-flight items will be re-polled")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
