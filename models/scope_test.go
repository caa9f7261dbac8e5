package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// issueVisibleTo evaluates an issue scope filter against an issue the way
// the database would, so the tests exercise the predicate's semantics
// rather than its shape.
func issueVisibleTo(actor Actor, issue Issue) bool {
	filter := IssueScopeFilter(actor)
	if len(filter) == 0 {
		return true
	}

	conditions := filter["$or"].([]bson.M)
	for _, cond := range conditions {
		if createdBy, ok := cond["createdBy"].(primitive.ObjectID); ok && issue.CreatedBy == createdBy {
			return true
		}
		if visibility, ok := cond["visibility"].(IssueVisibility); ok && issue.Visibility == visibility {
			return true
		}
	}
	return false
}

func TestIssueScopeStudentSeesOwnAndPublic(t *testing.T) {
	studentA := Actor{ID: primitive.NewObjectID(), Role: RoleStudent}
	studentB := primitive.NewObjectID()

	ownPrivate := Issue{CreatedBy: studentA.ID, Visibility: Private}
	ownPublic := Issue{CreatedBy: studentA.ID, Visibility: Public}
	othersPublic := Issue{CreatedBy: studentB, Visibility: Public}
	othersPrivate := Issue{CreatedBy: studentB, Visibility: Private}

	assert.True(t, issueVisibleTo(studentA, ownPrivate))
	assert.True(t, issueVisibleTo(studentA, ownPublic))
	assert.True(t, issueVisibleTo(studentA, othersPublic))
	assert.False(t, issueVisibleTo(studentA, othersPrivate))
}

func TestIssueScopeManagementSeesEverything(t *testing.T) {
	management := Actor{ID: primitive.NewObjectID(), Role: RoleManagement}

	assert.Equal(t, bson.M{}, IssueScopeFilter(management))

	private := Issue{CreatedBy: primitive.NewObjectID(), Visibility: Private}
	assert.True(t, issueVisibleTo(management, private))
}

func TestIssueScopeStudentFilterShape(t *testing.T) {
	student := Actor{ID: primitive.NewObjectID(), Role: RoleStudent}

	filter := IssueScopeFilter(student)
	conditions, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conditions, 2)
	assert.Equal(t, student.ID, conditions[0]["createdBy"])
	assert.Equal(t, Public, conditions[1]["visibility"])
}

func TestAnnouncementScopeStudentFiltersHostelAndBlock(t *testing.T) {
	student := Actor{
		ID:     primitive.NewObjectID(),
		Role:   RoleStudent,
		Hostel: "B",
		Block:  "3",
	}

	filter := AnnouncementScopeFilter(student)

	conditions, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conditions, 2)
	assert.Equal(t, TargetAll, conditions[0]["targetRole"])
	assert.Equal(t, "student", conditions[1]["targetRole"])

	assert.Equal(t, bson.M{"$in": []string{TargetAllLocations, "B"}}, filter["hostel"])
	assert.Equal(t, bson.M{"$in": []string{TargetAllLocations, "3"}}, filter["block"])
}

func TestAnnouncementScopeManagementIgnoresHostelAndBlock(t *testing.T) {
	management := Actor{ID: primitive.NewObjectID(), Role: RoleManagement}

	filter := AnnouncementScopeFilter(management)

	conditions, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, conditions, 2)
	assert.Equal(t, TargetAll, conditions[0]["targetRole"])
	assert.Equal(t, "management", conditions[1]["targetRole"])

	_, hasHostel := filter["hostel"]
	_, hasBlock := filter["block"]
	assert.False(t, hasHostel)
	assert.False(t, hasBlock)
}
