package urlmeta

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/logger"
	"myblog/pkg/metrics"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds the single outbound request.
	DefaultTimeout = 10 * time.Second
	// DefaultUserAgent is a desktop browser user agent. Some sites refuse
	// requests from non-browser clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	// DefaultMaxBodyBytes caps how much of a page is read.
	DefaultMaxBodyBytes = 5 << 20

	instrumentationName = "myblog/pkg/urlmeta"
)

// Options configure the Client. Zero values fall back to the defaults above.
type Options struct {
	// Timeout bounds the whole fetch, redirects included.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// MaxBodyBytes caps how much of the response body is parsed.
	MaxBodyBytes int64
	// HTTPClient overrides the client used for fetching. Its Timeout is left as is.
	HTTPClient *http.Client
	// MeterProvider receives the resolver metrics. Defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider receives the resolver spans. Defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Client is the HTTP-backed Resolver. It holds no per-request state and is
// safe for concurrent use.
type Client struct {
	options    Options
	httpClient *http.Client
	tracer     trace.Tracer

	resolveTotal    metric.Int64Counter
	resolveDuration metric.Float64Histogram
}

// Ensure Client conforms to the Resolver interface at compile time.
var _ Resolver = (*Client)(nil)

// New constructs a Client from options.
func New(options Options) (*Client, error) {
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}
	if options.MaxBodyBytes <= 0 {
		options.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if options.MeterProvider == nil {
		options.MeterProvider = otel.GetMeterProvider()
	}
	if options.TracerProvider == nil {
		options.TracerProvider = otel.GetTracerProvider()
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}

	meter := options.MeterProvider.Meter(instrumentationName)
	total, err := meter.Int64Counter("urlmeta.resolve.total",
		metric.WithDescription("Number of URL metadata resolutions by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create resolve counter: %w", err)
	}
	duration, err := meter.Float64Histogram("urlmeta.resolve.duration",
		metric.WithDescription("Duration of URL metadata resolutions."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create resolve histogram: %w", err)
	}

	return &Client{
		options:         options,
		httpClient:      httpClient,
		tracer:          options.TracerProvider.Tracer(instrumentationName),
		resolveTotal:    total,
		resolveDuration: duration,
	}, nil
}

// Resolve runs normalize, fetch and extract for rawURL. It never panics and
// never returns an error; failures are reported through the result.
func (c *Client) Resolve(ctx context.Context, rawURL string) (result domain.URLMetadata) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "urlmeta.Resolve", trace.WithAttributes(attribute.String("url.input", rawURL)))
	ctx = logger.WithFields(ctx, zap.String("url", rawURL))

	var err error
	defer func() {
		if p := recover(); p != nil {
			err = parseFailed(fmt.Errorf("%v", p))
			result.Success = false
		}
		if err != nil {
			result.Error = err.Error()
			span.RecordError(err)
			span.SetStatus(codes.Error, result.Error)
			logger.Warn(ctx, "could not resolve url metadata", zap.Error(err))
		}

		attrs := metric.WithAttributes(attribute.String("outcome", outcome(err)))
		c.resolveTotal.Add(ctx, 1, attrs)
		c.resolveDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		span.End()
	}()

	result.URL = rawURL
	effective, err := NormalizeURL(rawURL)
	if err != nil {
		return result
	}
	result.URL = effective
	result.Domain = Domain(effective)
	span.SetAttributes(attribute.String("url.full", effective))

	doc, err := c.fetch(ctx, effective)
	if err != nil {
		return result
	}

	result.Title = Title(doc)
	result.Description = Description(doc)
	result.Logo = Logo(doc, effective)
	result.Success = true
	logger.Debug(ctx, "resolved url metadata", zap.String("title", result.Title), zap.String("logo", result.Logo))

	return result
}
