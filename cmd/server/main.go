package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitecms/internal/config"
	"github.com/sitecms/internal/db"
	"github.com/sitecms/internal/handler"
	"github.com/sitecms/internal/logger"
	"github.com/sitecms/internal/router"
	"github.com/sitecms/internal/sanitize"
	"github.com/sitecms/internal/service"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sitecms",
		Short:         "Site content server: menus, tabs, services and site settings",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config (defaults to $CONFIG_PATH)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update database tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := bootstrap()
				if err == nil {
					logger.Info().Msg("migration finished")
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert demo menus, tabs, services and settings into an empty database",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := bootstrap()
				if err != nil {
					return err
				}
				return service.SeedDemo(db.DB, sanitize.New(cfg.Sanitizer))
			},
		},
	)
	return rootCmd
}

// bootstrap 加载配置、初始化日志与数据库
func bootstrap() (config.AppConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	logger.Init(cfg.LogLevel)

	if err := db.Init(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		logger.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to initialize database")
		return cfg, err
	}
	return cfg, nil
}

func runServe() error {
	cfg, err := bootstrap()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	api := handler.NewAPI(db.DB, sanitize.New(cfg.Sanitizer))
	r, err := router.SetupRouter(api, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to setup router")
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.ListenAddr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error().Err(err).Msg("failed to run server")
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
