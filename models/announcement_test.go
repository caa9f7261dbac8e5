package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSetReactionReplacesExisting(t *testing.T) {
	userID := primitive.NewObjectID()
	announcement := Announcement{}

	announcement.SetReaction(userID, "👍")
	require.Len(t, announcement.Reactions, 1)

	// repeat reaction replaces, never duplicates
	announcement.SetReaction(userID, "🎉")
	require.Len(t, announcement.Reactions, 1)
	assert.Equal(t, "🎉", announcement.Reactions[0].Emoji)

	otherID := primitive.NewObjectID()
	announcement.SetReaction(otherID, "👍")
	assert.Len(t, announcement.Reactions, 2)
}

func TestRemoveReactionDropsOnlyOwn(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	announcement := Announcement{}
	announcement.SetReaction(userA, "👍")
	announcement.SetReaction(userB, "🎉")

	announcement.RemoveReaction(userA)

	require.Len(t, announcement.Reactions, 1)
	assert.Equal(t, userB, announcement.Reactions[0].User)

	// removing a missing reaction is a no-op
	announcement.RemoveReaction(userA)
	assert.Len(t, announcement.Reactions, 1)
}

func TestReactionCountsGroupsByEmoji(t *testing.T) {
	announcement := Announcement{}
	announcement.SetReaction(primitive.NewObjectID(), "👍")
	announcement.SetReaction(primitive.NewObjectID(), "👍")
	announcement.SetReaction(primitive.NewObjectID(), "🎉")

	counts := announcement.ReactionCounts()
	assert.Equal(t, 2, counts["👍"])
	assert.Equal(t, 1, counts["🎉"])
}

func TestReactionViewsResolvesNames(t *testing.T) {
	known := primitive.NewObjectID()
	unknown := primitive.NewObjectID()

	announcement := Announcement{}
	announcement.SetReaction(known, "👍")
	announcement.SetReaction(unknown, "🎉")

	views := announcement.ReactionViews(func(userID primitive.ObjectID) (string, bool) {
		if userID == known {
			return "Asha", true
		}
		return "", false
	})

	require.Len(t, views, 2)
	assert.Equal(t, known, views[0].User["id"])
	assert.Equal(t, "Asha", views[0].User["name"])
	assert.Equal(t, "👍", views[0].Emoji)

	// an unresolvable reactor keeps the id and omits the name
	assert.Equal(t, unknown, views[1].User["id"])
	assert.NotContains(t, views[1].User, "name")
}

func TestFindComment(t *testing.T) {
	commentID := primitive.NewObjectID()
	announcement := Announcement{
		Comments: []Comment{
			{ID: primitive.NewObjectID(), Text: "first"},
			{ID: commentID, Text: "second"},
		},
	}

	comment := announcement.FindComment(commentID)
	require.NotNil(t, comment)
	assert.Equal(t, "second", comment.Text)

	assert.Nil(t, announcement.FindComment(primitive.NewObjectID()))
}
