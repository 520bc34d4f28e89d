package jobs

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const lateDeliverySchedule = "@hourly"

type lateDeliveryFlagger interface {
	Handle(ctx context.Context, cmd commands.FlagLateDeliveriesCommand) error
}

// LateDeliveryJob scans active deliveries for missed schedules.
type LateDeliveryJob struct {
	handler lateDeliveryFlagger
	cron    *cron.Cron
	logger  *zap.Logger
	now     func() time.Time
}

func NewLateDeliveryJob(handler lateDeliveryFlagger, logger *zap.Logger) *LateDeliveryJob {
	return &LateDeliveryJob{
		handler: handler,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		logger:  logger.Named("jobs").With(zap.String("job", "late_delivery")),
		now:     time.Now,
	}
}

func (j *LateDeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(lateDeliverySchedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("job started", zap.String("schedule", lateDeliverySchedule))
	return nil
}

func (j *LateDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

func (j *LateDeliveryJob) run(ctx context.Context) {
	cmd, err := commands.NewFlagLateDeliveriesCommand(j.now())
	if err != nil {
		j.logger.Error("failed to build command", zap.Error(err))
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.Error("late delivery scan failed", zap.Error(err))
	}
}
