package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	lateDeliveryJob     *LateDeliveryJob
	membershipExpiryJob *MembershipExpiryJob
}

func NewJobManager(
	flagLateDeliveries lateDeliveryFlagger,
	expireMemberships membershipExpirer,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		lateDeliveryJob:     NewLateDeliveryJob(flagLateDeliveries, logger),
		membershipExpiryJob: NewMembershipExpiryJob(expireMemberships, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lateDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start late delivery job: %w", err)
	}

	if err := jm.membershipExpiryJob.Start(); err != nil {
		jm.lateDeliveryJob.Stop()
		return fmt.Errorf("failed to start membership expiry job: %w", err)
	}

	return nil
}

// StopAll waits for running jobs to finish.
func (jm *JobManager) StopAll() {
	jm.membershipExpiryJob.Stop()
	jm.lateDeliveryJob.Stop()
}
