package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zapdesk/callguard"
	"zapdesk/catalog"
	"zapdesk/dialog"
	"zapdesk/dispatch"
	"zapdesk/internal/gateway"
	"zapdesk/internal/logutil"
	"zapdesk/internal/observability"
	"zapdesk/session"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the attendant with the websocket transport gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			metrics := observability.NewMetrics("zapdesk")

			cat := catalog.Load(logger, catalog.Paths{
				Plans:    viper.GetString("catalog.plans_path"),
				Help:     viper.GetString("catalog.help_path"),
				Reseller: viper.GetString("catalog.reseller_path"),
			})

			adminJID := strings.TrimSpace(viper.GetString("admin_jid"))
			if adminJID == "" {
				logger.Warn("admin_jid_unset", "effect", "support notifications disabled")
			}

			sessions := session.NewStore()
			hub := gateway.NewHub()

			// No contact directory is wired in the dev gateway; number
			// resolution falls through to jid parsing.
			engine := dialog.NewEngine(sessions, cat, nil, dialog.Config{
				AdminJID:   adminJID,
				BannerPath: viper.GetString("assets.banner_path"),
				APKPath:    viper.GetString("assets.apk_path"),
			}, logger, metrics)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dispatcher := dispatch.New(ctx, engine, hub, logger, metrics,
				viper.GetInt("dispatch.max_concurrency"),
				viper.GetInt("dispatch.queue_size"),
			)
			guard := callguard.New(hub, logger, metrics)

			srv := gateway.New(logger, dispatcher, guard, hub, viper.GetBool("allow_any_origin"))
			addr := viper.GetString("listen_addr")
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serve_start", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("serve_shutdown")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	}
	return cmd
}
