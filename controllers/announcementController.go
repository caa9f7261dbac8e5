package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hostelsync-be/config"
	"hostelsync-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var announcementCollection *mongo.Collection = config.GetCollection("announcements")

func findAnnouncement(ctx context.Context, c *gin.Context) (*models.Announcement, bool) {
	announcementID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return nil, false
	}

	var announcement models.Announcement
	err = announcementCollection.FindOne(ctx, bson.M{"_id": announcementID}).Decode(&announcement)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve announcement"})
		}
		return nil, false
	}

	return &announcement, true
}

// CreateAnnouncement creates a facility notice (management only)
func CreateAnnouncement(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title      string `json:"title" binding:"required"`
		Message    string `json:"message" binding:"required"`
		Type       string `json:"type,omitempty"`
		Hostel     string `json:"hostel,omitempty"`
		Block      string `json:"block,omitempty"`
		TargetRole string `json:"targetRole,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcementType := models.General
	if input.Type != "" {
		announcementType = models.AnnouncementType(input.Type)
		if !announcementType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement type"})
			return
		}
	}

	targetRole := models.TargetAll
	if input.TargetRole != "" {
		if !models.ValidTargetRole(input.TargetRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target role"})
			return
		}
		targetRole = input.TargetRole
	}

	hostel := input.Hostel
	if hostel == "" {
		hostel = models.TargetAllLocations
	}
	block := input.Block
	if block == "" {
		block = models.TargetAllLocations
	}

	now := time.Now()
	announcement := models.Announcement{
		ID:         primitive.NewObjectID(),
		Title:      input.Title,
		Message:    input.Message,
		Type:       announcementType,
		Hostel:     hostel,
		Block:      block,
		TargetRole: targetRole,
		CreatedBy:  actor.ID,
		Reactions:  make([]models.Reaction, 0),
		Comments:   make([]models.Comment, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := announcementCollection.InsertOne(ctx, announcement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// GetAnnouncements lists announcements visible to the actor, newest first.
// Students are additionally filtered by their hostel and block.
func GetAnnouncements(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Scope needs the student's hostel/block from the user record
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": actor.ID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	actor.Role = user.Role
	actor.Hostel = user.Hostel
	actor.Block = user.Block

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := announcementCollection.Find(ctx, models.AnnouncementScopeFilter(actor), findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve announcements"})
		return
	}
	defer cursor.Close(ctx)

	announcements := make([]models.Announcement, 0)
	if err := cursor.All(ctx, &announcements); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// AddReaction sets the user's reaction, replacing any existing one
func AddReaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Emoji string `json:"emoji"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Emoji == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Emoji is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	announcement.SetReaction(actor.ID, input.Emoji)

	_, err := announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID},
		bson.M{"$set": bson.M{"reactions": announcement.Reactions, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reaction added successfully",
		"reactions": announcement.ReactionCounts(),
	})
}

// RemoveReaction removes the user's reaction
func RemoveReaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	announcement.RemoveReaction(actor.ID)

	_, err := announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID},
		bson.M{"$set": bson.M{"reactions": announcement.Reactions, "updatedAt": time.Now()}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove reaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reaction removed successfully",
		"reactions": announcement.ReactionCounts(),
	})
}

// GetReactions returns emoji counts plus the per-user reactions with
// reactor names resolved
func GetReactions(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	userReactions := announcement.ReactionViews(func(userID primitive.ObjectID) (string, bool) {
		var reactor models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&reactor); err != nil {
			return "", false
		}
		return reactor.Name, true
	})

	c.JSON(http.StatusOK, gin.H{
		"reactions":     announcement.ReactionCounts(),
		"userReactions": userReactions,
	})
}

// AddComment appends a comment carrying the author's name snapshot
func AddComment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": actor.ID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		User:      actor.ID,
		UserName:  user.Name,
		Text:      strings.TrimSpace(input.Text),
		Replies:   make([]models.Reply, 0),
		CreatedAt: time.Now(),
	}

	_, err := announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$inc":  bson.M{"commentCount": 1},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Comment added successfully",
		"comment":      comment,
		"commentCount": announcement.CommentCount + 1,
	})
}

// DeleteComment removes a comment; only its author may delete it
func DeleteComment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	comment := announcement.FindComment(commentID)
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	if comment.User != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own comments"})
		return
	}

	newCount := announcement.CommentCount - 1
	if newCount < 0 {
		newCount = 0
	}

	_, err = announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID},
		bson.M{
			"$pull": bson.M{"comments": bson.M{"_id": commentID}},
			"$set":  bson.M{"commentCount": newCount, "updatedAt": time.Now()},
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Comment deleted successfully",
		"commentCount": newCount,
	})
}

// AddReply appends a reply to a comment
func AddReply(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reply text is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": actor.ID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	if announcement.FindComment(commentID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	reply := models.Reply{
		ID:        primitive.NewObjectID(),
		User:      actor.ID,
		UserName:  user.Name,
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: time.Now(),
	}

	_, err = announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID, "comments._id": commentID},
		bson.M{
			"$push": bson.M{"comments.$.replies": reply},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reply"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reply added successfully",
		"reply":   reply,
	})
}

// DeleteReply removes a reply; only its author may delete it
func DeleteReply(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	replyID, err := primitive.ObjectIDFromHex(c.Param("replyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reply ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	announcement, ok := findAnnouncement(ctx, c)
	if !ok {
		return
	}

	comment := announcement.FindComment(commentID)
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var reply *models.Reply
	for i := range comment.Replies {
		if comment.Replies[i].ID == replyID {
			reply = &comment.Replies[i]
			break
		}
	}
	if reply == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reply not found"})
		return
	}

	if reply.User != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own replies"})
		return
	}

	_, err = announcementCollection.UpdateOne(ctx,
		bson.M{"_id": announcement.ID, "comments._id": commentID},
		bson.M{
			"$pull": bson.M{"comments.$.replies": bson.M{"_id": replyID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
