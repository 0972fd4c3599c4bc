package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexiusacademia/gosteam/internal/service"
	"github.com/spf13/cobra"
)

var (
	serveAddr          string
	serveRedis         string
	serveRedisPassword string
	serveRedisDB       int
	serveCacheTTL      time.Duration
	serveMemoryCache   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve water and steam properties over HTTP",
	Long: `Start an HTTP server with a JSON API:

  GET /v1/state?pair=pT&a=10&b=800       full property set
  GET /v1/region?pair=ph&a=3&b=2800      region classification
  GET /v1/saturation?T=373.15            saturated liquid and vapour
  GET /metrics                           Prometheus metrics
  GET /healthz                           liveness

Responses can be cached in Redis (--redis) or in memory (--memory-cache).

Examples:
  gosteam serve --addr :8080
  gosteam serve --redis localhost:6379 --cache-ttl 24h`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveRedis, "redis", "", "Redis address for the response cache")
	serveCmd.Flags().StringVar(&serveRedisPassword, "redis-password", "", "Redis password")
	serveCmd.Flags().IntVar(&serveRedisDB, "redis-db", 0, "Redis database")
	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", time.Hour, "Expiration of cached responses in Redis")
	serveCmd.Flags().BoolVar(&serveMemoryCache, "memory-cache", false, "Cache responses in memory")
	serveCmd.MarkFlagsMutuallyExclusive("redis", "memory-cache")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []service.Option{service.WithLogger(logger)}
	switch {
	case serveRedis != "":
		cache := service.NewRedisCache(serveRedis, serveRedisPassword, serveRedisDB, service.WithTTL(serveCacheTTL))
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			return err
		}
		logger.Info("using redis cache", "addr", serveRedis, "ttl", serveCacheTTL)
		opts = append(opts, service.WithCache(cache))
	case serveMemoryCache:
		logger.Info("using in-memory cache")
		opts = append(opts, service.WithCache(service.NewMemoryCache()))
	}

	fmt.Printf("Serving IAPWS-IF97 properties on %s\n", serveAddr)
	return service.New(opts...).Run(ctx, serveAddr)
}
