package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biolink/config"
	"biolink/internal/domain/constants"
	"biolink/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.LinkClickEvent {
	return &service.LinkClickEvent{
		RequestID: "req-1",
		ClickID:   "click-1",
		LinkID:    "link-1",
		UserID:    "user-1",
		Referrer:  "https://instagram.com",
		ClickedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishLinkClickEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishLinkClickEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "click-1", received.Message.MessageID)
	assert.Equal(t, constants.EventTypeLinkClicked, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "link-1", received.Message.Attributes[constants.AttrLinkID])
	assert.Equal(t, "req-1", received.Message.Attributes[constants.AttrRequestID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.LinkClickEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishLinkClickEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)
	assert.NotContains(t, attributes, constants.AttrRequestID)
	assert.Len(t, attributes, 2)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "clicks"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishLinkClickEvent(context.Background(), testEvent()))

				return
			}

			bounded, ok := publisher.(*timeoutPublisher)
			require.True(t, ok)
			assert.Equal(t, defaultPublishTimeout, bounded.timeout)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestTimeoutPublisher_ReleasesRedirect(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	defer close(release)

	publisher := &timeoutPublisher{
		next:    NewLocalHTTPPublisher(server.URL, testLogger()),
		timeout: 20 * time.Millisecond,
	}

	start := time.Now()
	err := publisher.PublishLinkClickEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.NoError(t, publisher.Close())
}
