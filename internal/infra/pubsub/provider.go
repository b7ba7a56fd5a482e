package pubsub

import (
	"context"
	"log/slog"
	"time"

	"biolink/config"
	"biolink/internal/domain/constants"
	"biolink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 2 * time.Second

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishLinkClickEvent(_ context.Context, event *service.LinkClickEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("click_id", event.ClickID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// timeoutPublisher bounds every publish. Click events are published on the redirect path,
// so a slow broker may delay a visitor by at most timeout before the click is dropped.
type timeoutPublisher struct {
	next    service.EventPublisher
	timeout time.Duration
}

func (p *timeoutPublisher) PublishLinkClickEvent(ctx context.Context, event *service.LinkClickEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.next.PublishLinkClickEvent(ctx, event)
}

func (p *timeoutPublisher) Close() error {
	return p.next.Close()
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

// NewEventPublisher creates the click event publisher selected by pubsub.provider.
// Without a provider, clicks still redirect but are not counted.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, click events are dropped")

		return NewNoopPublisher(logger), nil
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	bounded := &timeoutPublisher{next: publisher, timeout: timeout}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing click event publisher")

			return bounded.Close()
		},
	})

	return bounded, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for click events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
