// Package main is the entry point for the mybalancer client-side balancer daemon. It loads
// configuration (env + YAML), builds the discoverer adapter (adapters.DiscovererHTTP), the
// lazy per-instance gRPC session factories, the stats sinks (in-memory, plus Redis when
// REDIS_ADDR is set), and the balancer itself (service.NewBalancer), which owns the refresh
// loop and the recurring idle-eviction sweep. An echo HTTP server exposes GET /v1/status.
// On SIGINT/SIGTERM the balancer is closed (cancelling the expiry task exactly once) and the
// HTTP server is shut down with a 5s timeout.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mybalancer/adapters"
	myredis "mybalancer/adapters/redis"
	"mybalancer/domain"
	"mybalancer/handlers"
	"mybalancer/interfaces"
	"mybalancer/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// main is the mybalancer entry point: loads config (LoadConfig), builds the HTTP discoverer,
// the session factory func (grpc.NewClient, insecure), the stats sinks and the balancer
// (service.NewBalancer — first refresh, recurring refresh task and expiry task), then serves
// the echo status endpoint on HTTPPort. On SIGINT/SIGTERM closes the balancer (idempotent,
// cancels both recurring tasks) and shuts the HTTP server down with a 5s timeout.
//
// Parameters and return: none (exits via os.Exit(1) on config/startup error).
//
// Called when the binary is started.
func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}

	var stats interfaces.StatsSink
	memStats := service.NewMemStats()
	stats = memStats
	if cfg.RedisAddr != "" {
		redisClient, redisErr := myredis.NewRedisUniversalClient(cfg.RedisAddr)
		if redisErr != nil {
			level.Error(logger).Log("msg", "failed to create redis client", "err", redisErr)
			os.Exit(1)
		}
		defer redisClient.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			cancel()
			level.Error(logger).Log("msg", "failed to connect to redis", "err", pingErr)
			os.Exit(1)
		}
		cancel()
		stats = service.NewFanoutStats(memStats, myredis.NewStatsSink(redisClient, logger))
	}

	discoverer := adapters.DiscovererHTTP(cfg.DiscovererURL, &http.Client{Timeout: 10 * time.Second})
	factory := func(inst domain.ServiceInstance) interfaces.SessionFactory {
		return service.NewGRPCSessionFactory(inst, func(ctx context.Context, inst domain.ServiceInstance) (*grpc.ClientConn, error) {
			addr := net.JoinHostPort(inst.Ipv4, strconv.Itoa(inst.Port))
			return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		})
	}
	balancer := service.NewBalancer(service.BalancerConfig{
		Discoverer:      discoverer,
		Factory:         factory,
		Timer:           service.NewTimerService(),
		Clock:           service.NewTimeProvider(func() time.Time { return time.Now().UTC() }),
		Stats:           stats,
		Logger:          logger,
		Expiry:          cfg.Expiry,
		RefreshInterval: cfg.RefreshInterval,
		ApertureWidth:   cfg.ApertureWidth,
	})
	defer balancer.Close()

	e := echo.New()
	e.HideBanner = true
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(balancer, memStats, logger))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTPPort)
		level.Info(logger).Log("msg", "starting mybalancer", "addr", addr, "idle_threshold", cfg.Expiry.IdleThreshold, "sweep_interval", cfg.Expiry.EffectiveSweepInterval())
		if serveErr := e.Start(addr); serveErr != nil && serveErr != http.ErrServerClosed {
			level.Error(logger).Log("msg", "http server error", "err", serveErr)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "shutting down")
	if closeErr := balancer.Close(); closeErr != nil {
		level.Warn(logger).Log("msg", "balancer close", "err", closeErr)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := e.Shutdown(ctx); shutdownErr != nil {
		level.Warn(logger).Log("msg", "http shutdown", "err", shutdownErr)
	}
}
