package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient wraps the PostHog client so callers never have to care
// whether analytics is configured. A nil inner client disables capture.
type AnalyticsClient struct {
	client posthog.Client
}

// NewAnalyticsClient creates the wrapper; an empty API key disables analytics.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialize analytics client", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	return &AnalyticsClient{client: client}
}

// IsInitialized reports whether events will actually be captured.
func (a *AnalyticsClient) IsInitialized() bool {
	return a != nil && a.client != nil
}

// Capture sends one event for the given owner id.
func (a *AnalyticsClient) Capture(distinctID, event string, properties map[string]any) {
	if !a.IsInitialized() {
		return
	}
	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	_ = a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: props,
	})
}

// Close flushes and shuts down the underlying client.
func (a *AnalyticsClient) Close() {
	if a.IsInitialized() {
		_ = a.client.Close()
	}
}
