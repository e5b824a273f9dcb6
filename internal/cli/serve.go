package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/diegoclair/crew-planner/internal/api"
	"github.com/diegoclair/crew-planner/internal/config"
	"github.com/diegoclair/crew-planner/internal/domain/service"
	"github.com/diegoclair/crew-planner/internal/handlers"
	"github.com/diegoclair/crew-planner/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API, the Slack command endpoint and the roster notifier",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New("planner")

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Errorf("database close: %v", err)
		}
	}()

	directory := service.NewCrewDirectory(st.dm, cfg.Directory.CacheTTL)
	svc := service.NewInstance(st.dm, directory, cfg.Trucks, logger.New("service"))

	opts := api.RouterOptions{
		RateLimit: rate.Limit(cfg.HTTP.RateLimitPerSec),
		Burst:     cfg.HTTP.RateLimitBurst,
	}
	if cfg.Slack.SigningSecret != "" {
		opts.SlackCommands = handlers.New(svc.View, svc.Bags, cfg.Slack.SigningSecret, logger.New("slack")).HandleSlashCommand
	} else {
		log.Warnf("slack.signing_secret is not set, /slack/commands is disabled")
	}

	if cfg.Roster.Enabled {
		notifier, err := newRosterNotifier(cfg, svc)
		if err != nil {
			return err
		}
		notifier.Start()
		defer notifier.Stop()
	}

	if strings.ToLower(os.Getenv("APP_ENV")) != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := api.NewHandler(svc.Assignment, svc.Placement, svc.Bags, svc.View, logger.New("api"))
	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           api.NewRouter(handler, opts, logger.New("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server starting on port %s", cfg.HTTP.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("Shutdown signal received, stopping services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Infof("Server gracefully stopped")
	return nil
}

type notifier interface {
	Start()
	Stop()
}

func newRosterNotifier(cfg *config.Config, svc *service.Instance) (notifier, error) {
	loc, err := time.LoadLocation(cfg.Roster.Timezone)
	if err != nil {
		return nil, fmt.Errorf("roster timezone: %w", err)
	}

	return service.NewRosterNotifier(svc.View, slack.New(cfg.Slack.BotToken), service.RosterSchedule{
		ChannelID: cfg.Roster.ChannelID,
		Weekday:   cfg.Roster.Weekday,
		Time:      cfg.Roster.Time,
		Location:  loc,
	}, logger.New("roster")), nil
}
