package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruai/platform-api/internal/domain/interview"
	"github.com/recruai/platform-api/pkg/logger"
)

type fakeInterviewRepo struct {
	interviews []*interview.Interview
	sweeps     int
	failSweep  error
}

func (r *fakeInterviewRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*interview.Interview, error) {
	var out []*interview.Interview
	for _, iv := range r.interviews {
		if iv.OwnerID == ownerID {
			out = append(out, iv)
		}
	}
	return out, nil
}

func (r *fakeInterviewRepo) Create(_ context.Context, iv *interview.Interview) error {
	iv.ID = int64(len(r.interviews) + 1)
	r.interviews = append(r.interviews, iv)
	return nil
}

func (r *fakeInterviewRepo) CompleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.sweeps++
	if r.failSweep != nil {
		return 0, r.failSweep
	}
	var changed int64
	for _, iv := range r.interviews {
		if iv.Status == interview.StatusScheduled && iv.ScheduledAt.Before(now) {
			iv.Status = interview.StatusCompleted
			changed++
		}
	}
	return changed, nil
}

func TestSweepOnceCompletesPastInterviews(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeInterviewRepo{
		interviews: []*interview.Interview{
			{ID: 1, Status: interview.StatusScheduled, ScheduledAt: now.Add(-time.Hour)},
			{ID: 2, Status: interview.StatusScheduled, ScheduledAt: now.Add(time.Hour)},
			{ID: 3, Status: interview.StatusCancelled, ScheduledAt: now.Add(-time.Hour)},
		},
	}
	sweeper := NewSweeper(repo, time.Minute, logger.NewNopLogger())

	sweeper.SweepOnce(context.Background())

	assert.Equal(t, interview.StatusCompleted, repo.interviews[0].Status)
	assert.Equal(t, interview.StatusScheduled, repo.interviews[1].Status)
	assert.Equal(t, interview.StatusCancelled, repo.interviews[2].Status)

	// A second sweep finds nothing left to flip.
	sweeper.SweepOnce(context.Background())
	assert.Equal(t, interview.StatusCompleted, repo.interviews[0].Status)
	assert.Equal(t, 2, repo.sweeps)
}

func TestSweepOnceSurvivesRepoFailure(t *testing.T) {
	repo := &fakeInterviewRepo{failSweep: errors.New("connection reset")}
	sweeper := NewSweeper(repo, time.Minute, logger.NewNopLogger())

	sweeper.SweepOnce(context.Background())
	assert.Equal(t, 1, repo.sweeps)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	repo := &fakeInterviewRepo{}
	sweeper := NewSweeper(repo, 10*time.Millisecond, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
	assert.GreaterOrEqual(t, repo.sweeps, 1)
}

func TestNewSweeperDefaultsInterval(t *testing.T) {
	sweeper := NewSweeper(&fakeInterviewRepo{}, 0, logger.NewNopLogger())
	require.NotNil(t, sweeper)
	assert.Equal(t, 5*time.Minute, sweeper.interval)
}
