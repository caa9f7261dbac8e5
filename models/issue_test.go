package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestIssue(createdAt time.Time) Issue {
	return Issue{
		ID:          primitive.NewObjectID(),
		Title:       "Leaking tap",
		Description: "Tap in room 204 keeps dripping",
		Category:    Plumbing,
		Priority:    Low,
		Status:      Reported,
		Visibility:  Public,
		StatusTimestamps: StatusTimestamps{
			Reported: createdAt,
		},
		CreatedBy: primitive.NewObjectID(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func statusPtr(s IssueStatus) *IssueStatus { return &s }

func strPtr(s string) *string { return &s }

func TestApplyStatusUpdateReportedTimestampNeverMutated(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	now := createdAt.Add(1 * time.Hour)
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(InProgress)}, now)
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Resolved)}, now.Add(time.Hour))
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Closed)}, now.Add(2*time.Hour))

	assert.Equal(t, createdAt, issue.StatusTimestamps.Reported)
}

func TestApplyStatusUpdateFirstWriteWinsPerField(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	first := createdAt.Add(30 * time.Minute)
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(InProgress)}, first)
	require.NotNil(t, issue.StatusTimestamps.InProgress)
	assert.Equal(t, first, *issue.StatusTimestamps.InProgress)

	// leave inprogress and come back; the stamp must not move
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Resolved)}, first.Add(time.Hour))
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(InProgress)}, first.Add(2*time.Hour))

	assert.Equal(t, InProgress, issue.Status)
	assert.Equal(t, first, *issue.StatusTimestamps.InProgress)
}

func TestApplyStatusUpdateSameStatusIsNoOp(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	change := issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Reported)}, createdAt.Add(time.Hour))

	assert.False(t, change.Changed())
	assert.Equal(t, Reported, issue.Status)
	assert.Equal(t, createdAt, issue.UpdatedAt)
}

func TestApplyStatusUpdateReassignmentKeepsFirstAssignedStamp(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	firstAssign := createdAt.Add(10 * time.Minute)
	change := issue.ApplyStatusUpdate(StatusUpdate{AssignedTo: strPtr("Alice")}, firstAssign)

	require.NotNil(t, issue.StatusTimestamps.Assigned)
	assert.Equal(t, "Alice", issue.AssignedTo)
	assert.Equal(t, firstAssign, *issue.StatusTimestamps.Assigned)
	assert.Contains(t, change.Timestamps, "assigned")

	// re-assignment overwrites the assignee but not the stamp, and must
	// not ask the store to touch any timestamp field again
	change = issue.ApplyStatusUpdate(StatusUpdate{AssignedTo: strPtr("Bob")}, firstAssign.Add(time.Hour))

	assert.Equal(t, "Bob", issue.AssignedTo)
	assert.Equal(t, firstAssign, *issue.StatusTimestamps.Assigned)
	assert.Equal(t, "Bob", change.Fields["assignedTo"])
	assert.Empty(t, change.Timestamps)
}

func TestApplyStatusUpdateSkipTransitionsAccepted(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	now := createdAt.Add(time.Hour)
	change := issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Closed)}, now)

	assert.True(t, change.Changed())
	assert.Equal(t, Closed, issue.Status)
	require.NotNil(t, issue.StatusTimestamps.Closed)
	assert.Equal(t, now, *issue.StatusTimestamps.Closed)
	assert.Nil(t, issue.StatusTimestamps.InProgress)
	assert.Nil(t, issue.StatusTimestamps.Resolved)
}

func TestApplyStatusUpdateBackwardTransitionAccepted(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	resolvedAt := createdAt.Add(time.Hour)
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Resolved)}, resolvedAt)
	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Reported)}, resolvedAt.Add(time.Hour))

	assert.Equal(t, Reported, issue.Status)
	require.NotNil(t, issue.StatusTimestamps.Resolved)
	assert.Equal(t, resolvedAt, *issue.StatusTimestamps.Resolved)
}

func TestApplyStatusUpdateAssignmentAndStatusTogether(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	now := createdAt.Add(15 * time.Minute)
	change := issue.ApplyStatusUpdate(StatusUpdate{
		Status:     statusPtr(Assigned),
		AssignedTo: strPtr("Caretaker Raj"),
	}, now)

	assert.True(t, change.Changed())
	assert.Equal(t, Assigned, issue.Status)
	assert.Equal(t, "Caretaker Raj", issue.AssignedTo)
	require.NotNil(t, issue.StatusTimestamps.Assigned)
	assert.Equal(t, now, *issue.StatusTimestamps.Assigned)
}

func TestApplyStatusUpdateEmptyInputChangesNothing(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)
	before := issue

	change := issue.ApplyStatusUpdate(StatusUpdate{}, createdAt.Add(time.Hour))

	assert.False(t, change.Changed())
	assert.Equal(t, before, issue)
}

func TestApplyStatusUpdateChangeListsOnlyNewStamps(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	issue := newTestIssue(createdAt)

	first := createdAt.Add(time.Hour)
	change := issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(InProgress)}, first)
	assert.Contains(t, change.Timestamps, "inProgress")

	issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(Resolved)}, first.Add(time.Hour))
	change = issue.ApplyStatusUpdate(StatusUpdate{Status: statusPtr(InProgress)}, first.Add(2*time.Hour))

	// back to inprogress: status field written, but no timestamp re-stamped
	assert.Equal(t, IssueStatus("inprogress"), change.Fields["status"])
	assert.Empty(t, change.Timestamps)
}

func TestNormalizeCategoryLowerCases(t *testing.T) {
	category := NormalizeCategory("Electrical")
	assert.Equal(t, Electrical, category)
	assert.True(t, category.Valid())

	assert.False(t, NormalizeCategory("gardening").Valid())
}
