package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedIssue(reported time.Time, inProgressAfter, resolvedAfter time.Duration) Issue {
	inProgress := reported.Add(inProgressAfter)
	resolved := reported.Add(resolvedAfter)
	return Issue{
		StatusTimestamps: StatusTimestamps{
			Reported:   reported,
			InProgress: &inProgress,
			Resolved:   &resolved,
		},
	}
}

func TestComputeAvgTimesSingleIssue(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	avg := ComputeAvgTimes([]Issue{timedIssue(t0, 2*time.Hour, 5*time.Hour)})

	require.NotNil(t, avg.AvgResponseTime)
	require.NotNil(t, avg.AvgResolutionTime)
	assert.Equal(t, float64((2 * time.Hour).Milliseconds()), *avg.AvgResponseTime)
	assert.Equal(t, float64((5 * time.Hour).Milliseconds()), *avg.AvgResolutionTime)
}

func TestComputeAvgTimesAveragesAcrossIssues(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	avg := ComputeAvgTimes([]Issue{
		timedIssue(t0, 1*time.Hour, 2*time.Hour),
		timedIssue(t0, 3*time.Hour, 6*time.Hour),
	})

	require.NotNil(t, avg.AvgResponseTime)
	require.NotNil(t, avg.AvgResolutionTime)
	assert.Equal(t, float64((2 * time.Hour).Milliseconds()), *avg.AvgResponseTime)
	assert.Equal(t, float64((4 * time.Hour).Milliseconds()), *avg.AvgResolutionTime)
}

func TestComputeAvgTimesSkipsIssuesMissingStamps(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	inProgress := t0.Add(time.Hour)

	onlyInProgress := Issue{
		StatusTimestamps: StatusTimestamps{
			Reported:   t0,
			InProgress: &inProgress,
		},
	}

	avg := ComputeAvgTimes([]Issue{
		onlyInProgress,
		timedIssue(t0, 2*time.Hour, 5*time.Hour),
	})

	require.NotNil(t, avg.AvgResponseTime)
	assert.Equal(t, float64((2 * time.Hour).Milliseconds()), *avg.AvgResponseTime)
}

func TestComputeAvgTimesEmptyWhenNoIssueQualifies(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	avg := ComputeAvgTimes(nil)
	assert.Nil(t, avg.AvgResponseTime)
	assert.Nil(t, avg.AvgResolutionTime)

	avg = ComputeAvgTimes([]Issue{{StatusTimestamps: StatusTimestamps{Reported: t0}}})
	assert.Nil(t, avg.AvgResponseTime)
	assert.Nil(t, avg.AvgResolutionTime)
}
