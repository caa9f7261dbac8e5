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

var carouselCollection *mongo.Collection = config.GetCollection("carousels")

func listCarousels(c *gin.Context, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := carouselCollection.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carousel items"})
		return
	}
	defer cursor.Close(ctx)

	carousels := make([]models.Carousel, 0)
	if err := cursor.All(ctx, &carousels); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode carousel items"})
		return
	}

	c.JSON(http.StatusOK, carousels)
}

// GetCarousels returns all active carousel items ordered for display
func GetCarousels(c *gin.Context) {
	listCarousels(c, bson.M{"isActive": true})
}

// GetAllCarousels returns every carousel item (management view)
func GetAllCarousels(c *gin.Context) {
	listCarousels(c, bson.M{})
}

// CreateCarousel creates a carousel item from uploaded image/video files
func CreateCarousel(c *gin.Context) {
	mediaType := models.CarouselMediaType(c.DefaultPostForm("mediaType", string(models.MediaImage)))
	if mediaType != models.MediaImage && mediaType != models.MediaVideo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type"})
		return
	}

	now := time.Now()
	carousel := models.Carousel{
		ID:        primitive.NewObjectID(),
		MediaType: mediaType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUploadedFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		carousel.Image = "/uploads/" + filename
	}

	if file, err := c.FormFile("video"); err == nil {
		filename, err := utils.SaveUploadedFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		carousel.Video = "/uploads/" + filename
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := carouselCollection.InsertOne(ctx, carousel); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create carousel item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Carousel item created successfully",
		"carousel": carousel,
	})
}

// UpdateCarousel applies a partial update to a carousel item
func UpdateCarousel(c *gin.Context) {
	carouselID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carousel ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var carousel models.Carousel
	err = carouselCollection.FindOne(ctx, bson.M{"_id": carouselID}).Decode(&carousel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Carousel item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carousel item"})
		}
		return
	}

	update := bson.M{"updatedAt": time.Now()}

	if mediaType := c.PostForm("mediaType"); mediaType != "" {
		mt := models.CarouselMediaType(mediaType)
		if mt != models.MediaImage && mt != models.MediaVideo {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media type"})
			return
		}
		carousel.MediaType = mt
		update["mediaType"] = mt
	}

	if isActive := c.PostForm("isActive"); isActive != "" {
		carousel.IsActive = isActive == "true"
		update["isActive"] = carousel.IsActive
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUploadedFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		carousel.Image = "/uploads/" + filename
		update["image"] = carousel.Image
	}

	if file, err := c.FormFile("video"); err == nil {
		filename, err := utils.SaveUploadedFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		carousel.Video = "/uploads/" + filename
		update["video"] = carousel.Video
	}

	if _, err := carouselCollection.UpdateOne(ctx, bson.M{"_id": carouselID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update carousel item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Carousel item updated successfully",
		"carousel": carousel,
	})
}

// DeleteCarousel removes a carousel item
func DeleteCarousel(c *gin.Context) {
	carouselID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carousel ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var carousel models.Carousel
	err = carouselCollection.FindOneAndDelete(ctx, bson.M{"_id": carouselID}).Decode(&carousel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Carousel item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete carousel item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Carousel item deleted successfully",
		"carousel": carousel,
	})
}

// ToggleCarousel flips a carousel item's active flag
func ToggleCarousel(c *gin.Context) {
	carouselID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid carousel ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var carousel models.Carousel
	err = carouselCollection.FindOne(ctx, bson.M{"_id": carouselID}).Decode(&carousel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Carousel item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carousel item"})
		}
		return
	}

	carousel.IsActive = !carousel.IsActive
	carousel.UpdatedAt = time.Now()

	_, err = carouselCollection.UpdateOne(ctx, bson.M{"_id": carouselID}, bson.M{
		"$set": bson.M{"isActive": carousel.IsActive, "updatedAt": carousel.UpdatedAt},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update carousel item"})
		return
	}

	message := "Carousel item deactivated"
	if carousel.IsActive {
		message = "Carousel item activated"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"carousel": carousel,
	})
}
