package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LostFoundStatus enum
type LostFoundStatus string

const (
	Lost         LostFoundStatus = "lost"
	Found        LostFoundStatus = "found"
	Claimed      LostFoundStatus = "claimed"
	ClaimPending LostFoundStatus = "claim-pending"
)

var validLostFoundStatuses = map[LostFoundStatus]bool{
	Lost: true, Found: true, Claimed: true, ClaimPending: true,
}

func (s LostFoundStatus) Valid() bool { return validLostFoundStatuses[s] }

// LostFound is a lost or found item reported by a resident
type LostFound struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ItemName         string              `bson:"itemName" json:"itemName"`
	Description      string              `bson:"description" json:"description"`
	Location         string              `bson:"location" json:"location"`
	Date             time.Time           `bson:"date" json:"date"`
	ImageURL         string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Status           LostFoundStatus     `bson:"status" json:"status"`
	ReportedBy       primitive.ObjectID  `bson:"reportedBy" json:"reportedBy"`
	ClaimRequestedBy *primitive.ObjectID `bson:"claimRequestedBy,omitempty" json:"claimRequestedBy,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
