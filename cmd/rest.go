package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	coreconfig "github.com/AzielCF/az-learn/core/config"
	"github.com/AzielCF/az-learn/ui/rest"
)

var restCmd = &cobra.Command{
	Use:     "rest",
	Aliases: []string{"serve"},
	Short:   "Serve the learning API over http",
	RunE:    restServer,
}

func init() {
	restCmd.Flags().Int("rate-limit", 1000, "requests per minute per IP, 0 disables the limiter")
	restCmd.Flags().Duration("health-interval", time.Minute, "interval between background health checks")
	rootCmd.AddCommand(restCmd)
}

func restServer(cmd *cobra.Command, _ []string) error {
	cfg := coreconfig.Global
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()

	account := make(map[string]string)
	for _, basicAuth := range cfg.App.BasicAuth {
		user, secret, _ := strings.Cut(basicAuth, ":")
		account[user] = secret
	}
	if len(account) == 0 {
		logrus.Warn("[REST] APP_BASIC_AUTH is empty, the API is not protected")
	}

	rateLimit, _ := cmd.Flags().GetInt("rate-limit")
	healthInterval, _ := cmd.Flags().GetDuration("health-interval")

	services := rt.services()
	app := rest.NewApp(rest.Options{
		AppName:   "Az-Learn " + cfg.App.Version,
		BasePath:  cfg.App.BasePath,
		Debug:     cfg.App.Debug,
		BasicAuth: account,
		Origins:   cfg.App.CorsAllowedOrigins,
		RateLimit: rateLimit,
	}, services)

	services.Health.StartPeriodicChecks(ctx, healthInterval)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		cancel()
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	logrus.Infof("[REST] Listening on :%s%s", cfg.App.Port, cfg.App.BasePath)
	return app.Listen(":" + cfg.App.Port)
}
