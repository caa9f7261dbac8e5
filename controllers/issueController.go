package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hostelsync-be/config"
	"hostelsync-be/models"
	"hostelsync-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var issueCollection *mongo.Collection = config.GetCollection("issues")
var userCollection *mongo.Collection = config.GetCollection("users")

// actorFromContext builds the scope-resolution actor from the auth
// middleware's context keys
func actorFromContext(c *gin.Context) (models.Actor, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return models.Actor{}, false
	}

	userID, err := primitive.ObjectIDFromHex(userIDVal.(string))
	if err != nil {
		return models.Actor{}, false
	}

	actor := models.Actor{ID: userID, Role: models.RoleStudent}
	if roleVal, exists := c.Get("role"); exists {
		if role, ok := roleVal.(string); ok {
			actor.Role = models.UserRole(role)
		}
	}

	return actor, true
}

// CreateIssue handles the creation of a new issue (multipart form with up
// to 5 attachment files)
func CreateIssue(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The creator's location is snapshotted onto the issue at creation
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": actor.ID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	categoryRaw := c.PostForm("category")

	if title == "" || description == "" || categoryRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description, and category are required"})
		return
	}

	category := models.NormalizeCategory(categoryRaw)
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	priority := models.IssuePriority(c.DefaultPostForm("priority", string(models.Low)))
	if !priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	visibility := models.IssueVisibility(c.DefaultPostForm("visibility", string(models.Public)))
	if !visibility.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visibility"})
		return
	}

	attachments := make([]models.Attachment, 0)
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["attachments"]
		if len(files) > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A maximum of 5 attachments is allowed"})
			return
		}

		for _, file := range files {
			filename, err := utils.SaveUploadedFile(c, file)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			attachments = append(attachments, models.Attachment{
				FileName: file.Filename,
				FileURL:  utils.BaseURL() + "/uploads/" + filename,
				FileType: file.Header.Get("Content-Type"),
			})
		}
	}

	now := time.Now()
	issue := models.Issue{
		ID:          primitive.NewObjectID(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Category:    category,
		Priority:    priority,
		Status:      models.Reported,
		Visibility:  visibility,
		StatusTimestamps: models.StatusTimestamps{
			Reported: now,
		},
		Hostel:      user.Hostel,
		Block:       user.Block,
		Room:        user.Room,
		CreatedBy:   user.ID,
		Attachments: attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := issueCollection.InsertOne(ctx, issue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetIssues retrieves issues scoped to the requesting actor: students see
// their own plus all public issues, management sees everything
func GetIssues(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := issueCollection.Find(ctx, models.IssueScopeFilter(actor), findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}
	defer cursor.Close(ctx)

	var issues []models.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode issues"})
		return
	}

	// Enrich issues with creator info. Management additionally gets the
	// creator's current hostel/block/room read through from the user record.
	type IssueWithCreator struct {
		models.Issue
		CreatedBy map[string]interface{} `json:"createdBy"`
	}

	issuesWithCreator := make([]IssueWithCreator, 0, len(issues))

	for _, issue := range issues {
		createdByMap := map[string]interface{}{
			"id": issue.CreatedBy,
		}

		var creator models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": issue.CreatedBy}).Decode(&creator); err == nil {
			createdByMap["name"] = creator.Name
			if actor.Role == models.RoleManagement {
				createdByMap["hostel"] = creator.Hostel
				createdByMap["block"] = creator.Block
				createdByMap["room"] = creator.Room
			} else {
				createdByMap["role"] = creator.Role
			}
		}

		issuesWithCreator = append(issuesWithCreator, IssueWithCreator{
			Issue:     issue,
			CreatedBy: createdByMap,
		})
	}

	c.JSON(http.StatusOK, issuesWithCreator)
}

// UpdateIssueStatus applies a status/assignment update to an issue.
// Timestamps follow the first-write-wins rule and are persisted with a
// set-only-if-unset guard per field, so a racing update cannot overwrite
// an earlier stamp.
func UpdateIssueStatus(c *gin.Context) {
	idParam := c.Param("id")
	issueID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status     *string `json:"status,omitempty"`
		AssignedTo *string `json:"assignedTo,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var update models.StatusUpdate
	if input.Status != nil {
		status := models.IssueStatus(*input.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		update.Status = &status
	}
	update.AssignedTo = input.AssignedTo

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var issue models.Issue
	err = issueCollection.FindOne(ctx, bson.M{"_id": issueID}).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	change := issue.ApplyStatusUpdate(update, time.Now())

	if change.Changed() {
		_, err = issueCollection.UpdateOne(ctx, bson.M{"_id": issueID}, bson.M{"$set": change.Fields})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
			return
		}

		for field, stamp := range change.Timestamps {
			key := "statusTimestamps." + field
			// matches only while the field is still missing or null
			_, err = issueCollection.UpdateOne(ctx,
				bson.M{"_id": issueID, key: nil},
				bson.M{"$set": bson.M{key: stamp}},
			)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue timestamps"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, issue)
}
