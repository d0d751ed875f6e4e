package jobs

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

// OutboxRelayer is satisfied by commands.RelayOutboxCommandHandler.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

// OutboxRelayJob periodically publishes pending outbox messages.
// A run that is still in progress when the next tick fires makes that tick
// a no-op.
type OutboxRelayJob struct {
	relayer  OutboxRelayer
	cmd      commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *logger.Logger
}

// NewOutboxRelayJob creates the job. schedule is a cron spec with a leading
// seconds field; empty means DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(
	relayer OutboxRelayer,
	schedule string,
	batchSize int,
	log *logger.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}

	return &OutboxRelayJob{
		relayer:  relayer,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   log.WithComponent("outbox_relay_job"),
	}, nil
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce relays a single batch and logs the outcome.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	result, err := j.relayer.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.Error("Outbox relay failed", zap.Error(err))
		return
	}

	if result.Abandoned > 0 {
		j.logger.Error("Outbox messages exceeded delivery attempts",
			zap.Int("published", result.Published),
			zap.Int("failed", result.Failed),
			zap.Int("abandoned", result.Abandoned),
		)
		return
	}
	if result.Failed > 0 {
		j.logger.Warn("Outbox messages failed to publish",
			zap.Int("published", result.Published),
			zap.Int("failed", result.Failed),
		)
		return
	}
	if result.Published > 0 {
		j.logger.Debug("Outbox messages published", zap.Int("published", result.Published))
	}
}

// Stop stops scheduling and waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
