package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpAdapter "github.com/aretw0/bramble/internal/adapters/http"
	"github.com/aretw0/bramble/internal/cli"
	"github.com/aretw0/bramble/internal/logging"
	"github.com/aretw0/bramble/pkg/adapters/yamlfile"
	"github.com/aretw0/bramble/pkg/domain"
	"github.com/aretw0/bramble/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve [problem.yaml]",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the planner in stateless server mode, exposing a JSON solve API over HTTP. A problem file supplies the default catalog; requests may also carry their own operators.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		depthLimit, _ := cmd.Flags().GetInt("depth-limit")
		debug, _ := cmd.Flags().GetBool("debug")

		logger := logging.New(slog.LevelInfo)
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		catalog, err := defaultCatalog(args)
		if err != nil {
			fmt.Printf("Error loading catalog: %v\n", err)
			os.Exit(1)
		}

		metrics := observability.NewMetrics()
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			fmt.Printf("Error registering metrics: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(catalog,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(metrics),
			httpAdapter.WithDepthLimit(depthLimit),
		)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/", handler)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Bramble Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Bramble Server stopped gracefully")
		}
	},
}

// defaultCatalog loads the server's default catalog: from the given
// problem file, or the bundled school demo when none is supplied.
func defaultCatalog(args []string) (domain.Catalog, error) {
	if len(args) == 0 {
		loader, err := cli.SchoolLoader().Build()
		if err != nil {
			return nil, err
		}
		return loader.Catalog()
	}

	loader, err := yamlfile.Load(args[0])
	if err != nil {
		return nil, err
	}
	return loader.Catalog()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Int("depth-limit", 128, "Recursion guard applied to every request (0 = no guard)")
}
