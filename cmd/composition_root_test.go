package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"purchasing/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, []ports.OutboxMessage) error { return nil }

func testConfig() Config {
	return Config{
		AuthJWTSecret:        "secret",
		OutboxRelaySchedule:  "0 0 0 1 1 *",
		OutboxRelayBatchSize: 10,
	}
}

func TestCompositionRoot_CreateRouter(t *testing.T) {
	root := NewCompositionRoot(testConfig(), nil, zap.NewNop())

	router, err := root.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompositionRoot_CreateJobManager(t *testing.T) {
	root := NewCompositionRoot(testConfig(), nil, zap.NewNop())

	withoutKafka, err := root.CreateJobManager(nil)
	require.NoError(t, err)
	require.NoError(t, withoutKafka.StartAll())
	withoutKafka.StopAll()

	withKafka, err := root.CreateJobManager(discardPublisher{})
	require.NoError(t, err)
	require.NoError(t, withKafka.StartAll())
	withKafka.StopAll()
}

func TestCompositionRoot_CreateJobManagerRejectsBadBatchSize(t *testing.T) {
	config := testConfig()
	config.OutboxRelayBatchSize = 0
	root := NewCompositionRoot(config, nil, zap.NewNop())

	_, err := root.CreateJobManager(discardPublisher{})
	require.Error(t, err)
}
