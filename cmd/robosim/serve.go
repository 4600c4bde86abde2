package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/joshp123/robosim/internal/capabilities"
	"github.com/joshp123/robosim/internal/config"
	"github.com/joshp123/robosim/internal/core"
	"github.com/joshp123/robosim/internal/logging"
	"github.com/joshp123/robosim/internal/robot"
	"github.com/joshp123/robosim/internal/router"
	"github.com/joshp123/robosim/internal/server"
	"github.com/joshp123/robosim/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

var (
	serveConfigPath    string
	serveDashboardsDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the robot gRPC and HTTP servers",
	Long:  "serve builds one robot from the configuration and serves it until SIGINT or SIGTERM.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(serveConfigPath)
		if err != nil {
			return err
		}
		logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to the YAML configuration (defaults apply when empty)")
	serveCmd.Flags().StringVar(&serveDashboardsDir, "dashboards-dir", "", "Write Grafana dashboards to this directory on startup")
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	metrics := telemetry.NewMetricsCollector()
	opts := []robot.Option{robot.WithObserver(metrics)}

	var publisher *telemetry.Publisher
	if cfg.MQTT.Enabled() {
		password, err := cfg.MQTTPassword()
		if err != nil {
			return err
		}
		publisher, err = telemetry.NewPublisher(telemetry.MQTTConfig{
			Broker:      cfg.MQTT.Broker,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    password,
			QoS:         byte(cfg.MQTT.QoS),
		}, logger)
		if err != nil {
			return err
		}
		opts = append(opts, robot.WithObserver(publisher))
	}

	r, err := robot.New(cfg.RobotSettings(), opts...)
	if err != nil {
		return fmt.Errorf("build robot: %w", err)
	}
	identity := r.Metadata()
	metrics.SetIdentity(identity)
	logger.Info("robot ready",
		"name", identity.Name,
		"model", identity.Model,
		"serial", identity.SerialID,
		"firmware", identity.FirmwareVersion,
		"first_uid", robot.FormatUID(r.PeekUID()))

	caps := capabilities.Compiled(capabilities.Deps{Robot: r, Metrics: metrics})
	if err := core.ValidateCapabilities(caps); err != nil {
		return err
	}
	if err := core.ValidateDashboards(caps); err != nil {
		return err
	}
	if err := core.WriteDashboards(serveDashboardsDir, caps); err != nil {
		return err
	}

	grpcServer, err := server.NewGRPCServer(cfg.Server.GRPCAddr, server.GRPCOptions{
		MaxWorkers: cfg.Server.MaxWorkers,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	router.RegisterCapabilities(grpcServer.Server, grpcServer.Health, caps)

	metricsRegistry, err := core.MetricsRegistry(caps)
	if err != nil {
		return err
	}
	metricsRegistry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "robosim_build_info",
		Help:        "Build information",
		ConstLabels: prometheus.Labels{"version": version},
	}, func() float64 { return 1 }))

	httpMux := http.NewServeMux()
	httpMux.HandleFunc("/health", server.HealthHandler)
	httpMux.Handle("/metrics", server.MetricsHandler(metricsRegistry))
	httpMux.Handle("/dashboards/", server.DashboardsHandler("/dashboards/", core.DashboardsMap(caps)))
	for _, c := range caps {
		if registrant, ok := c.(core.HTTPRegistrant); ok {
			registrant.RegisterHTTP(httpMux)
		}
	}
	httpServer := server.NewHTTPServer(cfg.Server.HTTPAddr, httpMux)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("grpc listening", "addr", grpcServer.Listener.Addr().String(), "max_workers", cfg.Server.MaxWorkers)
		if err := grpcServer.Serve(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("http listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})
	if publisher != nil {
		g.Go(func() error {
			logger.Info("publishing state to mqtt", "broker", cfg.MQTT.Broker, "topic", publisher.Topic(identity.SerialID))
			return publisher.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.Shutdown(shutdownCtx)
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
