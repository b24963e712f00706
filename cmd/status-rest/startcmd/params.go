/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/status-list-svc/cmd/common"
	"github.com/trustbloc/status-list-svc/pkg/event/spi"
	"github.com/trustbloc/status-list-svc/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the status-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "STATUS_REST_HOST_URL"

	hostURLExternalFlagName      = "host-url-external"
	hostURLExternalFlagShorthand = "x"
	hostURLExternalEnvKey        = "STATUS_REST_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage     = "This is the URL for the host server as seen externally." +
		" Status list credential URLs are built from it. Format: https://<HOST>:<PORT>"

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "STATUS_REST_REDIS_URL"
	redisURLFlagUsage = "Comma-separated list of Redis addresses used for distributed allocation locks." +
		" If not provided, an in-process keyed mutex is used instead. " + commonEnvVarUsageText + redisURLEnvKey

	redisPasswordFlagName  = "redis-password"              //nolint: gosec
	redisPasswordEnvKey    = "STATUS_REST_REDIS_PASSWORD"  //nolint: gosec
	redisPasswordFlagUsage = "Redis password (optional). " + commonEnvVarUsageText + redisPasswordEnvKey

	redisDisableTLSFlagName  = "redis-disable-tls"
	redisDisableTLSEnvKey    = "STATUS_REST_REDIS_DISABLE_TLS"
	redisDisableTLSFlagUsage = "Disables TLS for Redis connections." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + redisDisableTLSEnvKey

	signingKeyPathFlagName  = "signing-key-path"
	signingKeyPathEnvKey    = "STATUS_REST_SIGNING_KEY_PATH"
	signingKeyPathFlagUsage = "The path to the PEM encoded private key used to sign status list tokens. " +
		commonEnvVarUsageText + signingKeyPathEnvKey

	signingKeyIDFlagName  = "signing-key-id"
	signingKeyIDEnvKey    = "STATUS_REST_SIGNING_KEY_ID"
	signingKeyIDFlagUsage = "The key ID set in the kid header of signed status list tokens. " +
		commonEnvVarUsageText + signingKeyIDEnvKey

	shardCapacityFlagName  = "shard-capacity"
	shardCapacityEnvKey    = "STATUS_REST_SHARD_CAPACITY"
	shardCapacityFlagUsage = "Number of slots in a status list shard, for definitions that do not set one." +
		" Defaults to 131072 if not set. " + commonEnvVarUsageText + shardCapacityEnvKey

	statusTopicFlagName  = "status-event-topic"
	statusTopicEnvKey    = "STATUS_REST_STATUS_EVENT_TOPIC"
	statusTopicFlagUsage = "The name of the status list event topic. " + commonEnvVarUsageText + statusTopicEnvKey

	tokenFlagName  = "api-token"
	tokenEnvKey    = "STATUS_REST_API_TOKEN" //nolint: gosec
	tokenFlagUsage = "Check for an API key in the X-API-Key header (optional). " +
		commonEnvVarUsageText + tokenEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "STATUS_REST_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "STATUS_REST_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for status-rest server. " + commonEnvVarUsageText + tlsCertificateEnvKey
	tlsCertificateEnvKey    = "STATUS_REST_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for status-rest server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "STATUS_REST_TLS_KEY"

	tokenSinkS3RegionFlagName  = "token-sink-s3-region"
	tokenSinkS3RegionEnvKey    = "STATUS_REST_TOKEN_SINK_S3_REGION"
	tokenSinkS3RegionFlagUsage = "S3 region for publishing status list tokens to s3:// URIs." +
		" Publications to s3:// URIs fail when not set. " + commonEnvVarUsageText + tokenSinkS3RegionEnvKey

	tokenSinkS3HostNameFlagName  = "token-sink-s3-hostname"
	tokenSinkS3HostNameEnvKey    = "STATUS_REST_TOKEN_SINK_S3_HOSTNAME"
	tokenSinkS3HostNameFlagUsage = "Optional public hostname used in the URLs of status list tokens" +
		" published to S3. " + commonEnvVarUsageText + tokenSinkS3HostNameEnvKey

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "STATUS_REST_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "STATUS_REST_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "URL that exposes the prometheus metrics endpoint. Format: HostName:Port. "

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "STATUS_REST_TRACING_EXPORTER"
	tracingExporterFlagUsage = "The tracing exporter (for example, JAEGER). " +
		commonEnvVarUsageText + tracingExporterEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "STATUS_REST_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: status-rest. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	metricsProviderPrometheus = "prometheus"

	defaultTracingServiceName = "status-rest"
)

type startupParameters struct {
	hostURL                         string
	hostURLExternal                 string
	dbParameters                    *common.DBParameters
	redisParameters                 *redisParameters
	signingKeyPath                  string
	signingKeyID                    string
	defaultShardCapacity            int
	statusEventTopic                string
	token                           string
	logLevel                        string
	tlsParameters                   *tlsParameters
	tokenSinkS3Region               string
	tokenSinkS3HostName             string
	metricsProviderName             string
	prometheusMetricsProviderParams *prometheusMetricsProviderParams
	tracingParams                   *tracingParams
}

type prometheusMetricsProviderParams struct {
	url string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

type redisParameters struct {
	addresses  []string
	password   string
	disableTLS bool
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

// nolint: gocyclo,funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	hostURLExternal, err := cmdutils.GetUserSetVarFromString(cmd, hostURLExternalFlagName,
		hostURLExternalEnvKey, false)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	var prometheusMetricsProviderParams *prometheusMetricsProviderParams
	if metricsProviderName == metricsProviderPrometheus {
		prometheusMetricsProviderParams, err = getPrometheusMetricsProviderParams(cmd)
	}
	if err != nil {
		return nil, err
	}

	tlsParameters, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	signingKeyPath, err := cmdutils.GetUserSetVarFromString(cmd, signingKeyPathFlagName, signingKeyPathEnvKey, false)
	if err != nil {
		return nil, err
	}

	signingKeyID := cmdutils.GetUserSetOptionalVarFromString(cmd, signingKeyIDFlagName, signingKeyIDEnvKey)

	defaultShardCapacity, err := getShardCapacity(cmd)
	if err != nil {
		return nil, err
	}

	statusTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, statusTopicFlagName, statusTopicEnvKey)
	if statusTopic == "" {
		statusTopic = spi.StatusListEventTopic
	}

	token := cmdutils.GetUserSetOptionalVarFromString(cmd, tokenFlagName, tokenEnvKey)

	loggingLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	tokenSinkS3Region := cmdutils.GetUserSetOptionalVarFromString(cmd, tokenSinkS3RegionFlagName,
		tokenSinkS3RegionEnvKey)

	tokenSinkS3HostName := cmdutils.GetUserSetOptionalVarFromString(cmd, tokenSinkS3HostNameFlagName,
		tokenSinkS3HostNameEnvKey)

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:                         hostURL,
		hostURLExternal:                 hostURLExternal,
		dbParameters:                    dbParams,
		redisParameters:                 redisParams,
		signingKeyPath:                  signingKeyPath,
		signingKeyID:                    signingKeyID,
		defaultShardCapacity:            defaultShardCapacity,
		statusEventTopic:                statusTopic,
		token:                           token,
		logLevel:                        loggingLevel,
		tlsParameters:                   tlsParameters,
		tokenSinkS3Region:               tokenSinkS3Region,
		tokenSinkS3HostName:             tokenSinkS3HostName,
		metricsProviderName:             metricsProviderName,
		prometheusMetricsProviderParams: prometheusMetricsProviderParams,
		tracingParams:                   tracingParams,
	}, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey, true)
	if err != nil {
		return "", err
	}

	return metricsProvider, nil
}

func getPrometheusMetricsProviderParams(cmd *cobra.Command) (*prometheusMetricsProviderParams, error) {
	promMetricsURL, err := cmdutils.GetUserSetVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &prometheusMetricsProviderParams{url: promMetricsURL}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	addresses := cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLFlagName, redisURLEnvKey)

	password := cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey)

	disableTLSString := cmdutils.GetUserSetOptionalVarFromString(cmd, redisDisableTLSFlagName,
		redisDisableTLSEnvKey)

	disableTLS := false

	if disableTLSString != "" {
		var err error

		disableTLS, err = strconv.ParseBool(disableTLSString)
		if err != nil {
			return nil, err
		}
	}

	return &redisParameters{
		addresses:  addresses,
		password:   password,
		disableTLS: disableTLS,
	}, nil
}

func getShardCapacity(cmd *cobra.Command) (int, error) {
	capacityStr := cmdutils.GetUserSetOptionalVarFromString(cmd, shardCapacityFlagName, shardCapacityEnvKey)
	if capacityStr == "" {
		return 0, nil
	}

	capacity, err := strconv.Atoi(capacityStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value [%s]: %w", capacityStr, err)
	}

	return capacity, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName,
		tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	params := &tracingParams{
		exporter:    cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey),
		serviceName: serviceName,
	}

	if !tracing.IsExporterSupported(params.exporter) {
		return nil, fmt.Errorf("unsupported tracing exporter: %s", params.exporter)
	}

	return params, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, hostURLExternalFlagShorthand, "", hostURLExternalFlagUsage)
	common.Flags(startCmd)
	startCmd.Flags().StringSliceP(redisURLFlagName, "", []string{}, redisURLFlagUsage)
	startCmd.Flags().StringP(redisPasswordFlagName, "", "", redisPasswordFlagUsage)
	startCmd.Flags().StringP(redisDisableTLSFlagName, "", "", redisDisableTLSFlagUsage)
	startCmd.Flags().StringP(signingKeyPathFlagName, "", "", signingKeyPathFlagUsage)
	startCmd.Flags().StringP(signingKeyIDFlagName, "", "", signingKeyIDFlagUsage)
	startCmd.Flags().StringP(shardCapacityFlagName, "", "", shardCapacityFlagUsage)
	startCmd.Flags().StringP(statusTopicFlagName, "", "", statusTopicFlagUsage)
	startCmd.Flags().StringP(tokenFlagName, "", "", tokenFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)
	startCmd.Flags().String(tokenSinkS3RegionFlagName, "", tokenSinkS3RegionFlagUsage)
	startCmd.Flags().String(tokenSinkS3HostNameFlagName, "", tokenSinkS3HostNameFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)
	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
}
