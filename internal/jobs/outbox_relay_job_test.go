package jobs

import (
	"context"
	"errors"
	"testing"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockOutboxRelayer struct {
	mock.Mock
}

func (m *MockOutboxRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func TestNewOutboxRelayJob(t *testing.T) {
	_, err := NewOutboxRelayJob(new(MockOutboxRelayer), "", 0, zap.NewNop())
	require.ErrorIs(t, err, errs.ErrValidation)

	job, err := NewOutboxRelayJob(new(MockOutboxRelayer), "", 50, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, DefaultOutboxRelaySchedule, job.schedule)
	assert.Equal(t, 50, job.command.BatchSize())
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	t.Run("logs published batch", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		relayer := new(MockOutboxRelayer)
		relayer.On("Handle", mock.Anything, mock.AnythingOfType("commands.RelayOutboxCommand")).Return(3, nil)

		job, err := NewOutboxRelayJob(relayer, "", 10, zap.New(core))
		require.NoError(t, err)
		job.RunOnce(context.Background())

		relayer.AssertExpectations(t)
		entries := logs.FilterMessage("Order events published").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(3), entries[0].ContextMap()["count"])
		assert.Equal(t, "outbox_relay_job", entries[0].ContextMap()["component"])
	})

	t.Run("quiet when nothing to publish", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		relayer := new(MockOutboxRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil)

		job, err := NewOutboxRelayJob(relayer, "", 10, zap.New(core))
		require.NoError(t, err)
		job.RunOnce(context.Background())

		assert.Zero(t, logs.Len())
	})

	t.Run("logs failures", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		relayer := new(MockOutboxRelayer)
		relayer.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("broker down"))

		job, err := NewOutboxRelayJob(relayer, "", 10, zap.New(core))
		require.NoError(t, err)
		job.RunOnce(context.Background())

		entries := logs.FilterLevelExact(zapcore.ErrorLevel).All()
		require.Len(t, entries, 1)
		assert.Equal(t, "Outbox relay failed", entries[0].Message)
	})
}

func TestOutboxRelayJob_StartRejectsBadSchedule(t *testing.T) {
	job, err := NewOutboxRelayJob(new(MockOutboxRelayer), "every minute", 10, zap.NewNop())
	require.NoError(t, err)

	require.Error(t, job.Start())
}

func TestCronLogger_ReportsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := cronLogger{logger: zap.New(core).Sugar()}

	l.Info("wake", "now", "12:00")
	l.Error(errors.New("boom"), "panic", "stack", "...")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}
