/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alexliesenfeld/health"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"

	"github.com/trustbloc/status-list-svc/cmd/common"
	"github.com/trustbloc/status-list-svc/internal/logfields"
	"github.com/trustbloc/status-list-svc/pkg/doc/signer"
	"github.com/trustbloc/status-list-svc/pkg/event"
	"github.com/trustbloc/status-list-svc/pkg/locker"
	"github.com/trustbloc/status-list-svc/pkg/observability/health/healthutil"
	healthmongo "github.com/trustbloc/status-list-svc/pkg/observability/health/mongo"
	healthredis "github.com/trustbloc/status-list-svc/pkg/observability/health/redis"
	"github.com/trustbloc/status-list-svc/pkg/observability/metrics"
	"github.com/trustbloc/status-list-svc/pkg/observability/metrics/noop"
	"github.com/trustbloc/status-list-svc/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/status-list-svc/pkg/observability/tracing"
	publishertracing "github.com/trustbloc/status-list-svc/pkg/observability/tracing/wrappers/publisher"
	registrytracing "github.com/trustbloc/status-list-svc/pkg/observability/tracing/wrappers/registry"
	shardmanagertracing "github.com/trustbloc/status-list-svc/pkg/observability/tracing/wrappers/shardmanager"
	"github.com/trustbloc/status-list-svc/pkg/restapi/resterr"
	"github.com/trustbloc/status-list-svc/pkg/restapi/v1/mw"
	statuslistv1 "github.com/trustbloc/status-list-svc/pkg/restapi/v1/statuslist"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/publisher"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/registry"
	"github.com/trustbloc/status-list-svc/pkg/service/statuslist/shardmanager"
	fstokenstore "github.com/trustbloc/status-list-svc/pkg/storage/fs/tokenstore"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb/definitionstore"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb/shardstore"
	"github.com/trustbloc/status-list-svc/pkg/storage/mongodb/slotstore"
	"github.com/trustbloc/status-list-svc/pkg/storage/redis"
	s3tokenstore "github.com/trustbloc/status-list-svc/pkg/storage/s3/tokenstore"
)

const (
	healthCheckEndpoint      = "/healthcheck"
	healthCheckCacheDuration = 2 * time.Second
	healthCheckTimeout       = 5 * time.Second

	databaseName = "status"
)

var logger = log.New("status-rest")

type server interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(srv *http.Server) *HTTPServer {
	return &HTTPServer{srv: srv}
}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// ListenAndServeTLS starts the server with TLS using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServeTLS(certFile, keyFile string) error {
	return s.srv.ListenAndServeTLS(certFile, keyFile)
}

type startOpts struct {
	server server
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the HTTP server implementation, overriding the default one.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start status-rest",
		Long:  "Start status-rest inside the status-list-svc",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			if params.logLevel != "" {
				common.SetDefaultLogLevel(logger, params.logLevel)
			}

			shutdownTracer, tracer, err := tracing.Initialize(params.tracingParams.exporter,
				params.tracingParams.serviceName)
			if err != nil {
				return fmt.Errorf("failed to initialize tracer: %w", err)
			}

			defer shutdownTracer()

			conf, err := prepareConfiguration(params, tracer)
			if err != nil {
				return err
			}

			return startServer(conf, opts...)
		},
	}
}

func startServer(conf *Configuration, opts ...StartOpts) error {
	options := &startOpts{}

	for _, opt := range opts {
		opt(options)
	}

	metricsProvider, err := createMetricsProvider(conf.StartupParameters)
	if err != nil {
		return err
	}

	var svcMetrics metrics.Metrics = noop.GetMetrics()

	if metricsProvider != nil {
		if err = metricsProvider.Create(); err != nil {
			return err
		}

		svcMetrics = metricsProvider.Metrics()
	}

	e, err := buildEchoHandler(conf, svcMetrics)
	if err != nil {
		return err
	}

	if options.server == nil {
		options.server = NewHTTPServer(&http.Server{
			Addr:    conf.StartupParameters.hostURL,
			Handler: e,
		})
	}

	logger.Info("Starting status-rest server", logfields.WithAddress(conf.StartupParameters.hostURL))

	tlsParams := conf.StartupParameters.tlsParameters

	if tlsParams.serveCertPath != "" && tlsParams.serveKeyPath != "" {
		return options.server.ListenAndServeTLS(tlsParams.serveCertPath, tlsParams.serveKeyPath)
	}

	return options.server.ListenAndServe()
}

// nolint: funlen
func buildEchoHandler(conf *Configuration, svcMetrics metrics.Metrics) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = resterr.HTTPErrorHandler(conf.Tracer)

	params := conf.StartupParameters

	e.Use(echomw.Recover())

	if conf.IsTraceEnabled {
		e.Use(otelecho.Middleware(params.tracingParams.serviceName))
	}

	if params.token != "" {
		e.Use(mw.APIKeyAuth(params.token))
	}

	ctx := context.Background()

	var mongodbClientOpts []mongodb.ClientOpt

	if conf.IsTraceEnabled {
		mongodbClientOpts = append(mongodbClientOpts, mongodb.WithTraceProvider(otel.GetTracerProvider()))
	}

	mongodbClient, err := common.InitMongoDBClient(params.dbParameters, logger,
		params.dbParameters.Prefix+databaseName, mongodbClientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	definitionStore, err := definitionstore.New(ctx, mongodbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create definition store: %w", err)
	}

	shardStore, err := shardstore.New(ctx, mongodbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create shard store: %w", err)
	}

	slotStore, err := slotstore.New(ctx, mongodbClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create slot store: %w", err)
	}

	var (
		svcLocker   locker.Locker = locker.NewKeyedMutex()
		redisClient *redis.Client
	)

	if len(params.redisParameters.addresses) > 0 {
		redisClient, err = createRedisClient(conf)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis client: %w", err)
		}

		svcLocker = locker.NewRedisLocker(redisClient.API())
	}

	eventBus := event.NewEventBus(event.DefaultConfig())

	var registryService registry.ServiceInterface = registry.New(&registry.Config{
		DefinitionStore:      definitionStore,
		ShardCounter:         shardStore,
		EventPublisher:       eventBus,
		EventTopic:           params.statusEventTopic,
		DefaultShardCapacity: params.defaultShardCapacity,
	})

	shardManager, err := shardmanager.New(&shardmanager.Config{
		DefinitionStore: definitionStore,
		ShardStore:      shardStore,
		SlotStore:       slotStore,
		TxnRunner:       mongodbClient,
		Locker:          svcLocker,
		EventPublisher:  eventBus,
		EventTopic:      params.statusEventTopic,
		Metrics:         svcMetrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shard manager: %w", err)
	}

	var shardManagerService shardmanager.ServiceInterface = shardManager

	tokenSigner, err := createTokenSigner(params)
	if err != nil {
		return nil, err
	}

	publisherConfig := &publisher.Config{
		DefinitionStore: definitionStore,
		ShardStore:      shardStore,
		SlotStore:       slotStore,
		Signer:          tokenSigner,
		FSSink:          fstokenstore.NewStore(),
		ExternalHost:    params.hostURLExternal,
		EventPublisher:  eventBus,
		EventTopic:      params.statusEventTopic,
		Metrics:         svcMetrics,
	}

	if params.tokenSinkS3Region != "" {
		awsConfig, awsErr := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(params.tokenSinkS3Region))
		if awsErr != nil {
			return nil, fmt.Errorf("failed to load AWS configuration: %w", awsErr)
		}

		publisherConfig.S3Sink = s3tokenstore.NewStore(s3.NewFromConfig(awsConfig),
			params.tokenSinkS3Region, params.tokenSinkS3HostName)
	}

	var publisherService publisher.ServiceInterface = publisher.New(publisherConfig)

	if conf.IsTraceEnabled {
		registryService = registrytracing.Wrap(registryService, conf.Tracer)
		shardManagerService = shardmanagertracing.Wrap(shardManagerService, conf.Tracer)
		publisherService = publishertracing.Wrap(publisherService, conf.Tracer)
	}

	statuslistv1.NewController(e, &statuslistv1.Config{
		RegistryService:  registryService,
		ShardManager:     shardManagerService,
		PublisherService: publisherService,
	})

	setupHealthCheckRoute(e, conf)

	return e, nil
}

func createRedisClient(conf *Configuration) (*redis.Client, error) {
	redisParams := conf.StartupParameters.redisParameters

	opts := []redis.ClientOpt{redis.WithPassword(redisParams.password)}

	if !redisParams.disableTLS {
		opts = append(opts, redis.WithTLSConfig(&tls.Config{
			RootCAs:    conf.RootCAs,
			MinVersion: tls.VersionTLS12,
		}))
	}

	if conf.IsTraceEnabled {
		opts = append(opts, redis.WithTraceProvider(otel.GetTracerProvider()))
	}

	return redis.New(redisParams.addresses, opts...)
}

func createTokenSigner(params *startupParameters) (*signer.JWSSigner, error) {
	keyBytes, err := os.ReadFile(filepath.Clean(params.signingKeyPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read signing key: %w", err)
	}

	signingKey, err := signer.FromPEM(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}

	tokenSigner, err := signer.New(signingKey, params.signingKeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token signer: %w", err)
	}

	return tokenSigner, nil
}

func createMetricsProvider(params *startupParameters) (metrics.Provider, error) {
	switch params.metricsProviderName {
	case "":
		return nil, nil
	case metricsProviderPrometheus:
		return prometheus.NewPrometheusProvider(&http.Server{
			Addr:    params.prometheusMetricsProviderParams.url,
			Handler: promhttp.Handler(),
		}), nil
	default:
		return nil, fmt.Errorf("unsupported metrics provider: %s", params.metricsProviderName)
	}
}

func setupHealthCheckRoute(e *echo.Echo, conf *Configuration) {
	params := conf.StartupParameters

	responseTimeStates := map[string]healthutil.ResponseTimeState{}

	checks := []health.Check{
		{
			Name:  "mongodb",
			Check: healthmongo.New(params.dbParameters.URL),
		},
	}

	if len(params.redisParameters.addresses) > 0 {
		redisOpts := []healthredis.ClientOpt{healthredis.WithPassword(params.redisParameters.password)}

		if !params.redisParameters.disableTLS {
			redisOpts = append(redisOpts, healthredis.WithTLSConfig(&tls.Config{
				RootCAs:    conf.RootCAs,
				MinVersion: tls.VersionTLS12,
			}))
		}

		checks = append(checks, health.Check{
			Name:  "redis",
			Check: healthredis.New(params.redisParameters.addresses, redisOpts...),
		})
	}

	checkerOpts := []health.CheckerOption{
		health.WithCacheDuration(healthCheckCacheDuration),
		health.WithTimeout(healthCheckTimeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimeStates)),
	}

	for _, check := range checks {
		checkerOpts = append(checkerOpts, health.WithCheck(check))
	}

	e.GET(healthCheckEndpoint, echo.WrapHandler(health.NewHandler(
		health.NewChecker(checkerOpts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimeStates)),
	)))
}
