package jobs

import (
	"context"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const membershipExpirySchedule = "5 0 * * *"

type membershipExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireMembershipsCommand) error
}

// MembershipExpiryJob ends contracts and subscriptions once a day.
type MembershipExpiryJob struct {
	handler membershipExpirer
	cron    *cron.Cron
	logger  *zap.Logger
	now     func() time.Time
}

func NewMembershipExpiryJob(handler membershipExpirer, logger *zap.Logger) *MembershipExpiryJob {
	return &MembershipExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		logger:  logger.Named("jobs").With(zap.String("job", "membership_expiry")),
		now:     time.Now,
	}
}

func (j *MembershipExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(membershipExpirySchedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("job started", zap.String("schedule", membershipExpirySchedule))
	return nil
}

func (j *MembershipExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

func (j *MembershipExpiryJob) run(ctx context.Context) {
	cmd, err := commands.NewExpireMembershipsCommand(j.now())
	if err != nil {
		j.logger.Error("failed to build command", zap.Error(err))
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.Error("membership expiry failed", zap.Error(err))
	}
}
