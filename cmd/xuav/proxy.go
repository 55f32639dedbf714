package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CannonJunior/x-uav/internal/devproxy"
)

func newProxyCmd(a *app) *cobra.Command {
	var listen, target, prefix, staticDir string

	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Serve the frontend dev proxy (forwards /api to the backend)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if listen != "" {
				cfg.ProxyListen = listen
			}
			if target != "" {
				cfg.ProxyTarget = target
			}
			if prefix != "" {
				cfg.ProxyPrefix = prefix
			}
			if staticDir != "" {
				cfg.ProxyStaticDir = staticDir
			}
			if err := cfg.ResolveDefaults(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return devproxy.Run(ctx, &cfg, a.log)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from XUAV_PROXY_LISTEN)")
	cmd.Flags().StringVar(&target, "target", "", "Backend origin (default from XUAV_PROXY_TARGET)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Forwarded path prefix (default from XUAV_PROXY_PREFIX)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "Directory served for non-API paths")

	return cmd
}
