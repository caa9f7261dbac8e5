package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnnouncementType enum
type AnnouncementType string

const (
	Cleaning    AnnouncementType = "cleaning"
	PestControl AnnouncementType = "pest-control"
	Water       AnnouncementType = "water"
	Electricity AnnouncementType = "electricity"
	Maintenance AnnouncementType = "maintenance"
	General     AnnouncementType = "general"
)

// TargetAll matches every role; TargetAllLocations is the hostel/block wildcard.
const (
	TargetAll          = "all"
	TargetAllLocations = "ALL"
)

var validAnnouncementTypes = map[AnnouncementType]bool{
	Cleaning: true, PestControl: true, Water: true,
	Electricity: true, Maintenance: true, General: true,
}

var validTargetRoles = map[string]bool{
	TargetAll: true, string(RoleStudent): true, string(RoleManagement): true,
}

func (t AnnouncementType) Valid() bool { return validAnnouncementTypes[t] }

// ValidTargetRole reports whether the value is a usable announcement target.
func ValidTargetRole(role string) bool { return validTargetRoles[role] }

// Reaction is a user's single emoji reaction; repeat reactions replace it.
type Reaction struct {
	User  primitive.ObjectID `bson:"user" json:"user"`
	Emoji string             `bson:"emoji" json:"emoji"`
}

// Reply carries the author's name snapshot captured at write time.
type Reply struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	UserName  string             `bson:"userName" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Comment is an append-only sub-document with its own reply list.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	UserName  string             `bson:"userName" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	Replies   []Reply            `bson:"replies" json:"replies"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Announcement is a facility notice targeted at a role and hostel/block.
type Announcement struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Message      string             `bson:"message" json:"message"`
	Type         AnnouncementType   `bson:"type" json:"type"`
	Hostel       string             `bson:"hostel" json:"hostel"`
	Block        string             `bson:"block" json:"block"`
	TargetRole   string             `bson:"targetRole" json:"targetRole"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Reactions    []Reaction         `bson:"reactions" json:"reactions"`
	Comments     []Comment          `bson:"comments" json:"comments"`
	CommentCount int                `bson:"commentCount" json:"commentCount"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetReaction records the user's reaction, replacing any existing one.
func (a *Announcement) SetReaction(userID primitive.ObjectID, emoji string) {
	for i := range a.Reactions {
		if a.Reactions[i].User == userID {
			a.Reactions[i].Emoji = emoji
			return
		}
	}
	a.Reactions = append(a.Reactions, Reaction{User: userID, Emoji: emoji})
}

// RemoveReaction drops the user's reaction if present.
func (a *Announcement) RemoveReaction(userID primitive.ObjectID) {
	kept := a.Reactions[:0]
	for _, r := range a.Reactions {
		if r.User != userID {
			kept = append(kept, r)
		}
	}
	a.Reactions = kept
}

// ReactionCounts groups the reaction list by emoji.
func (a *Announcement) ReactionCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range a.Reactions {
		counts[r.Emoji]++
	}
	return counts
}

// ReactionView pairs a reaction with its reactor's resolved name.
type ReactionView struct {
	User  map[string]interface{} `json:"user"`
	Emoji string                 `json:"emoji"`
}

// ReactionViews resolves reactor names through lookup. A failed lookup
// still yields the reactor's id.
func (a *Announcement) ReactionViews(lookup func(primitive.ObjectID) (string, bool)) []ReactionView {
	views := make([]ReactionView, 0, len(a.Reactions))
	for _, r := range a.Reactions {
		userMap := map[string]interface{}{"id": r.User}
		if name, ok := lookup(r.User); ok {
			userMap["name"] = name
		}
		views = append(views, ReactionView{User: userMap, Emoji: r.Emoji})
	}
	return views
}

// FindComment returns the comment with the given id, or nil.
func (a *Announcement) FindComment(commentID primitive.ObjectID) *Comment {
	for i := range a.Comments {
		if a.Comments[i].ID == commentID {
			return &a.Comments[i]
		}
	}
	return nil
}
