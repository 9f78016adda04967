// Clawdeck dashboard server — streams agent chat over SSE, persists
// session history, and manages connections to gateway instances.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clawdeck/clawdeck/pkg/api"
	"github.com/clawdeck/clawdeck/pkg/chat"
	"github.com/clawdeck/clawdeck/pkg/database"
	"github.com/clawdeck/clawdeck/pkg/gateway"
	"github.com/clawdeck/clawdeck/pkg/sandbox"
	"github.com/clawdeck/clawdeck/pkg/services"
)

const shutdownTimeout = 15 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInstanceSpecs parses GATEWAY_INSTANCES, a comma-separated list
// of id=ws-url pairs, e.g. "prod=ws://gw-prod:9100/ws,dev=ws://gw-dev:9100/ws".
func parseInstanceSpecs(raw string) map[string]string {
	specs := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, url, ok := strings.Cut(part, "=")
		if !ok || id == "" || url == "" {
			slog.Warn("Ignoring malformed gateway instance spec", "spec", part)
			continue
		}
		specs[id] = url
	}
	return specs
}

func main() {
	envPath := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting clawdeck", "http_port", httpPort)

	ctx := context.Background()

	// 1. Initialize database
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

	// 2. Connect configured gateway instances
	registry := gateway.NewRegistry()
	for id, url := range parseInstanceSpecs(os.Getenv("GATEWAY_INSTANCES")) {
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := gateway.Dial(dialCtx, id, url)
		cancel()
		if err != nil {
			// Non-fatal: the instance may come up later; sends to it
			// fail with 502 until it is registered.
			slog.Warn("Failed to connect gateway instance", "instance_id", id, "error", err)
			continue
		}
		registry.Put(id, client)
		slog.Info("Connected gateway instance", "instance_id", id)
	}

	// 3. Agent workspace file access (optional)
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	var fileAccess sandbox.FileAccess
	if addr := os.Getenv("SANDBOX_SERVICE_ADDR"); addr != "" {
		grpcClient, err := sandbox.NewGRPCClient(addr)
		if err != nil {
			slog.Error("Failed to create sandbox client", "error", err)
			os.Exit(1)
		}
		defer func() { _ = grpcClient.Close() }()
		fileAccess = grpcClient
		slog.Info("Sandbox file access via gRPC", "addr", addr)
	} else if root := os.Getenv("WORKSPACE_DIR"); root != "" {
		fileAccess = sandbox.NewLocalFS(root)
		slog.Info("Sandbox file access via local workspace", "root", root)
	}

	// 4. Domain services
	archiver := services.NewArchiveService(dbClient.Client)
	sessionService := services.NewChatSessionService(dbClient.Client, archiver)
	assembler := chat.NewAttachmentAssembler(fileAccess)
	slog.Info("Services initialized")

	// 5. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, registry, sessionService, assembler)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown: stop accepting requests, then drop gateway
	// connections so in-flight streams terminate.
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	}

	for _, id := range registry.InstanceIDs() {
		if conn, ok := registry.Remove(id); ok {
			if closer, ok := conn.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		}
	}

	slog.Info("Shutdown complete")
}
