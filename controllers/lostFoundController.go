package controllers

import (
	"context"
	"net/http"
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

var lostFoundCollection *mongo.Collection = config.GetCollection("lostfound")

// CreateLostFoundItem reports a lost or found item (multipart form with an
// optional image)
func CreateLostFoundItem(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemName := c.PostForm("itemName")
	description := c.PostForm("description")
	location := c.PostForm("location")
	dateRaw := c.PostForm("date")

	if itemName == "" || description == "" || location == "" || dateRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name, description, location, and date are required"})
		return
	}

	date, err := time.Parse(time.RFC3339, dateRaw)
	if err != nil {
		date, err = time.Parse("2006-01-02", dateRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
	}

	status := models.LostFoundStatus(c.DefaultPostForm("status", string(models.Lost)))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	item := models.LostFound{
		ID:          primitive.NewObjectID(),
		ItemName:    itemName,
		Description: description,
		Location:    location,
		Date:        date,
		Status:      status,
		ReportedBy:  actor.ID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUploadedFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ImageURL = "/uploads/" + filename
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := lostFoundCollection.InsertOne(ctx, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetLostFoundItems lists all items, newest first, with reporter and
// claimer names resolved
func GetLostFoundItems(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := lostFoundCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}
	defer cursor.Close(ctx)

	var items []models.LostFound
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode items"})
		return
	}

	type ItemWithNames struct {
		models.LostFound
		ReportedBy       map[string]interface{} `json:"reportedBy"`
		ClaimRequestedBy map[string]interface{} `json:"claimRequestedBy,omitempty"`
	}

	itemsWithNames := make([]ItemWithNames, 0, len(items))

	for _, item := range items {
		reportedByMap := map[string]interface{}{"id": item.ReportedBy}
		var reporter models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": item.ReportedBy}).Decode(&reporter); err == nil {
			reportedByMap["name"] = reporter.Name
		}

		var claimMap map[string]interface{}
		if item.ClaimRequestedBy != nil {
			claimMap = map[string]interface{}{"id": *item.ClaimRequestedBy}
			var claimer models.User
			if err := userCollection.FindOne(ctx, bson.M{"_id": *item.ClaimRequestedBy}).Decode(&claimer); err == nil {
				claimMap["name"] = claimer.Name
			}
		}

		itemsWithNames = append(itemsWithNames, ItemWithNames{
			LostFound:        item,
			ReportedBy:       reportedByMap,
			ClaimRequestedBy: claimMap,
		})
	}

	c.JSON(http.StatusOK, itemsWithNames)
}

// RequestClaim handles a claim on an item. The reporter claiming their own
// lost item is auto-approved; every other claim waits for management.
func RequestClaim(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var item models.LostFound
	err = lostFoundCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	if item.Status == models.Lost && item.ReportedBy == actor.ID {
		item.Status = models.Claimed
	} else {
		item.Status = models.ClaimPending
	}
	item.ClaimRequestedBy = &actor.ID
	item.UpdatedAt = time.Now()

	_, err = lostFoundCollection.UpdateOne(ctx, bson.M{"_id": itemID}, bson.M{
		"$set": bson.M{
			"status":           item.Status,
			"claimRequestedBy": item.ClaimRequestedBy,
			"updatedAt":        item.UpdatedAt,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ApproveClaim marks a pending claim as claimed (management only)
func ApproveClaim(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var item models.LostFound
	err = lostFoundCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	item.Status = models.Claimed
	item.UpdatedAt = time.Now()

	_, err = lostFoundCollection.UpdateOne(ctx, bson.M{"_id": itemID}, bson.M{
		"$set": bson.M{"status": item.Status, "updatedAt": item.UpdatedAt},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}
