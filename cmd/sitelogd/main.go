// Command sitelogd is a small demonstration daemon: it emits logs from
// a few call sites on a timer while serving the admin API, so level
// changes can be watched taking effect without a restart.
//
//	sitelogd --log-level info --admin-addr localhost:9901
//	curl localhost:9901/loggers
//	curl -X POST 'localhost:9901/loggers?key=demo/worker&level=trace'
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/philipp01105/sitelog/admin"
	"github.com/philipp01105/sitelog/config"
	"github.com/philipp01105/sitelog/registry"
)

var (
	workerSite registry.CallSite
	tickerSite registry.CallSite
)

func main() {
	cfg := config.New()
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "sitelogd",
		Short:        "demo daemon for runtime-reconfigurable per-call-site logging",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgPath != "" {
				if err := cfg.LoadFile(cfgPath, cmd.Flags()); err != nil {
					return err
				}
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	cfg.RegisterFlags(cmd.Flags())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	reg, closer, err := cfg.BuildRegistry()
	if err != nil {
		return err
	}
	defer closer.Close()

	mainLog := reg.GetOrCreate("demo/main")
	mainLog.Infof("sitelogd starting, admin API on %s", cfg.AdminAddr)

	router := mux.NewRouter()
	admin.NewController(reg).Register(router)
	srv := &http.Server{
		Addr:              cfg.AdminAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	go emitDemo(ctx, reg)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		mainLog.Criticalf("admin server failed: %v", err)
		return err
	}

	mainLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return mainLog.Flush()
}

// emitDemo logs from two distinct call sites so the admin API has
// something to retune.
func emitDemo(ctx context.Context, reg *registry.Registry) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var n int
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n++
			workerSite.Bind(reg, "demo/worker").Debugf("worker iteration %d", n)
			tickerSite.Bind(reg, "demo/ticker").Tracef("tick %d", n)
			if n%10 == 0 {
				workerSite.Bind(reg, "demo/worker").Infof("completed %d iterations", n)
			}
		}
	}
}
