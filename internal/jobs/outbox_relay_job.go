package jobs

import (
	"context"
	"fmt"

	"purchasing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

// OutboxRelayer is satisfied by *commands.RelayOutboxCommandHandler.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes pending order events to Kafka.
type OutboxRelayJob struct {
	relayer  OutboxRelayer
	command  commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewOutboxRelayJob creates the job. The schedule is a six-field cron
// expression with seconds; an empty one means DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(relayer OutboxRelayer, schedule string, batchSize int, logger *zap.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}

	logger = logger.With(zap.String("component", "outbox_relay_job"))
	cronLog := cronLogger{logger: logger.Sugar()}

	return &OutboxRelayJob{
		relayer:  relayer,
		command:  cmd,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}, nil
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay"
}

// Start registers the job on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce relays a single batch and logs the outcome.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	published, err := j.relayer.Handle(ctx, j.command)
	if err != nil {
		j.logger.Error("Outbox relay failed", zap.Error(err))
		return
	}
	if published > 0 {
		j.logger.Info("Order events published", zap.Int("count", published))
	}
}

// Stop waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}

// cronLogger routes scheduler messages, including recovered panics, to zap.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
