package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarouselMediaType enum
type CarouselMediaType string

const (
	MediaImage CarouselMediaType = "image"
	MediaVideo CarouselMediaType = "video"
)

// Carousel is a landing-page media slide
type Carousel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Video     string             `bson:"video,omitempty" json:"video,omitempty"`
	MediaType CarouselMediaType  `bson:"mediaType" json:"mediaType"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
