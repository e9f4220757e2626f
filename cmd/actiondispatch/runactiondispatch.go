package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub/v2"
	"github.com/caarlos0/env/v11"
	"github.com/illmade-knight/action-dispatch/app"
	"github.com/illmade-knight/action-dispatch/internal/capability"
	"github.com/illmade-knight/action-dispatch/internal/server"
	firestorestorage "github.com/illmade-knight/action-dispatch/internal/storage/firestore"
	"github.com/illmade-knight/action-dispatch/pkg/auditing"
	"github.com/illmade-knight/action-dispatch/pkg/share"
	"github.com/rs/zerolog"
)

// Config holds the service configuration, populated from the environment.
type Config struct {
	HTTPListenAddr string `env:"HTTP_LISTEN_ADDR" envDefault:":8080"`

	// ShareBackend selects the capability the share action is wired to:
	// "webhook" or "pubsub".
	ShareBackend    string `env:"SHARE_BACKEND" envDefault:"webhook"`
	ShareWebhookURL string `env:"SHARE_WEBHOOK_URL"`
	ShareTopicID    string `env:"SHARE_TOPIC_ID"`

	// AuditBackend selects dispatch-history storage: "memory" or "firestore".
	AuditBackend string `env:"AUDIT_BACKEND" envDefault:"memory"`
	GCPProjectID string `env:"GCP_PROJECT_ID"`
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse configuration from environment")
	}

	// 2. Initialize GCP clients where the configuration asks for them
	var fsClient *firestore.Client
	var psClient *pubsub.Client
	needsGCP := cfg.AuditBackend == "firestore" || cfg.ShareBackend == "pubsub"
	if needsGCP && cfg.GCPProjectID == "" {
		logger.Fatal().Msg("GCP_PROJECT_ID must be set for firestore auditing or pubsub sharing")
	}
	if cfg.AuditBackend == "firestore" {
		var err error
		fsClient, err = firestore.NewClient(ctx, cfg.GCPProjectID)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Firestore client")
		}
		defer fsClient.Close()
	}
	if cfg.ShareBackend == "pubsub" {
		var err error
		psClient, err = pubsub.NewClient(ctx, cfg.GCPProjectID)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Pub/Sub client")
		}
		defer psClient.Close()
	}

	// 3. Instantiate the share capability backend
	var shareCapability share.Capability
	switch cfg.ShareBackend {
	case "webhook":
		if cfg.ShareWebhookURL == "" {
			logger.Fatal().Msg("SHARE_WEBHOOK_URL must be set for the webhook share backend")
		}
		shareCapability = capability.NewWebhookSharer(cfg.ShareWebhookURL, logger)
	case "pubsub":
		if cfg.ShareTopicID == "" {
			logger.Fatal().Msg("SHARE_TOPIC_ID must be set for the pubsub share backend")
		}
		shareCapability = capability.NewPubSubSharer(psClient.Publisher(cfg.ShareTopicID), logger)
	default:
		logger.Fatal().Str("share_backend", cfg.ShareBackend).Msg("Unknown share backend")
	}
	logger.Info().Str("share_backend", cfg.ShareBackend).Msg("Share capability initialized")

	// 4. Instantiate audit storage
	var auditStore auditing.Store
	switch cfg.AuditBackend {
	case "memory":
		auditStore = auditing.NewInMemoryStore()
	case "firestore":
		auditStore = firestorestorage.NewAuditStore(fsClient)
	default:
		logger.Fatal().Str("audit_backend", cfg.AuditBackend).Msg("Unknown audit backend")
	}
	logger.Info().Str("audit_backend", cfg.AuditBackend).Msg("Audit storage initialized")

	// 5. Instantiate the Main Application Orchestrator
	application, err := app.New(shareCapability, auditStore, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to assemble application")
	}
	logger.Info().Strs("registered_actions", application.Registry.Tags()).Msg("Application orchestrator created")

	// 6. Serve
	httpServer := server.New(cfg.HTTPListenAddr, application, logger)
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server exited with error")
	}
	logger.Info().Msg("Shutdown complete. Exiting.")
}
