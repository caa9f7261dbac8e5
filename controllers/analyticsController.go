package controllers

import (
	"context"
	"net/http"
	"time"

	"hostelsync-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetAnalytics returns the management dashboard aggregations. Every stat
// is computed over public issues only; private issues never contribute.
// A failure in any aggregation fails the whole request.
func GetAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	matchStage := bson.M{"visibility": models.Public}

	// Issue counts per category
	categoryPipeline := []bson.M{
		{"$match": matchStage},
		{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"category": "$_id", "count": 1, "_id": 0}},
	}

	categoryCursor, err := issueCollection.Aggregate(ctx, categoryPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category analytics"})
		return
	}
	defer categoryCursor.Close(ctx)

	categoryStats := make([]models.CategoryStat, 0)
	if err := categoryCursor.All(ctx, &categoryStats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode category analytics"})
		return
	}

	// Hostel-wise issue density, grouped by the creator's current hostel
	// (a live join through the user record, not the issue's snapshot)
	hostelPipeline := []bson.M{
		{"$match": matchStage},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "createdBy",
			"foreignField": "_id",
			"as":           "user",
		}},
		{"$unwind": "$user"},
		{"$group": bson.M{"_id": "$user.hostel", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"hostel": "$_id", "count": 1, "_id": 0}},
	}

	hostelCursor, err := issueCollection.Aggregate(ctx, hostelPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hostel analytics"})
		return
	}
	defer hostelCursor.Close(ctx)

	hostelStats := make([]models.HostelStat, 0)
	if err := hostelCursor.All(ctx, &hostelStats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode hostel analytics"})
		return
	}

	// Issue counts per status
	statusPipeline := []bson.M{
		{"$match": matchStage},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		{"$project": bson.M{"status": "$_id", "count": 1, "_id": 0}},
	}

	statusCursor, err := issueCollection.Aggregate(ctx, statusPipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get status analytics"})
		return
	}
	defer statusCursor.Close(ctx)

	statusStats := make([]models.StatusStat, 0)
	if err := statusCursor.All(ctx, &statusStats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode status analytics"})
		return
	}

	// Average response and resolution times over issues that have both
	// an inProgress and a resolved stamp
	timeFilter := bson.M{
		"visibility":                  models.Public,
		"statusTimestamps.inProgress": bson.M{"$exists": true, "$ne": nil},
		"statusTimestamps.resolved":   bson.M{"$exists": true, "$ne": nil},
	}

	timeCursor, err := issueCollection.Find(ctx, timeFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get time analytics"})
		return
	}
	defer timeCursor.Close(ctx)

	var timedIssues []models.Issue
	if err := timeCursor.All(ctx, &timedIssues); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode time analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categoryStats": categoryStats,
		"hostelStats":   hostelStats,
		"statusStats":   statusStats,
		"avgTimes":      models.ComputeAvgTimes(timedIssues),
	})
}
