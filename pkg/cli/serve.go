package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lifetrace-app/lifetrace/pkg/cli/config"
	httpctrl "github.com/lifetrace-app/lifetrace/pkg/controller/http"
	"github.com/lifetrace-app/lifetrace/pkg/service/labeler"
	"github.com/lifetrace-app/lifetrace/pkg/usecase"
	"github.com/lifetrace-app/lifetrace/pkg/utils/logging"
	"github.com/lifetrace-app/lifetrace/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var periodsCfg config.Periods

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("LIFETRACE_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, periodsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the extraction trigger HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			extractionCfg, err := periodsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load periods configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			var labelerSvc labeler.Service
			if llmClient != nil {
				labelerSvc, err = labeler.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to create labeler service")
				}
				logging.Default().Info("Labeling service enabled")
			} else {
				logging.Default().Warn("Gemini project not configured, extraction requests will fail")
			}

			uc := usecase.New(repo, labelerSvc, usecase.WithExtractionConfig(extractionCfg))

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
