package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/memory"
	"todolist/internal/adapter/seed"
	appservice "todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/pkg/translator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("port", "", "port to listen on (overrides APP_PORT)")
	cmd.Flags().String("seed-file", "", "YAML file with starter categories (overrides SEED_FILE)")
	cmd.Flags().Bool("no-seed", false, "start with no categories")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()
	applyServeFlags(cmd, cfg)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	categories, err := seed.Resolve(cfg.SeedFile, cfg.SeedDefaults)
	if err != nil {
		return err
	}
	store := memory.NewStore(memory.WithSeed(categories))
	logger.Info("store ready", zap.Int("seed_categories", len(categories)))

	gin.SetMode(cfg.GinMode)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r, err := buildRouter(cfg, logger, store, registry)
	if err != nil {
		return err
	}

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.AppPort = port
	}
	if seedFile, _ := cmd.Flags().GetString("seed-file"); seedFile != "" {
		cfg.SeedFile = seedFile
	}
	if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
		cfg.SeedDefaults = false
		cfg.SeedFile = ""
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
}

func buildRouter(cfg *config.Config, logger *zap.Logger, store *memory.Store, registry *prometheus.Registry) (*gin.Engine, error) {
	metrics := httpmiddleware.NewMetrics(registry)
	httpmiddleware.RegisterStoreGauges(registry, store)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(
		gin.Recovery(),
		httpmiddleware.RequestIDMiddleware(),
		httpmiddleware.GinZapMiddleware(logger),
		httpmiddleware.MetricsMiddleware(metrics),
		httpmiddleware.CORSMiddleware(),
	)

	categoryService := appservice.NewCategoryService(store)
	todoService := appservice.NewTodoService(store, store)
	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(store),
		handlers.NewCategoryHandler(categoryService),
		handlers.NewTodoHandler(todoService),
	)
	httpadapter.RegisterMetrics(r, registry)

	return r, nil
}
