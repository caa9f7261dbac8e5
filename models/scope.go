package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor identifies the requesting user for scope resolution.
type Actor struct {
	ID     primitive.ObjectID
	Role   UserRole
	Hostel string
	Block  string
}

// IssueScopeFilter returns the Mongo filter for issues the actor may read.
// Students see their own issues plus every public issue regardless of
// owner; management sees all issues unfiltered.
func IssueScopeFilter(actor Actor) bson.M {
	if actor.Role == RoleManagement {
		return bson.M{}
	}

	return bson.M{
		"$or": []bson.M{
			{"createdBy": actor.ID},
			{"visibility": Public},
		},
	}
}

// AnnouncementScopeFilter returns the Mongo filter for announcements the
// actor may read: target role "all" or the actor's role, and for students
// additionally the actor's hostel/block (or the "ALL" wildcard). Management
// sees every hostel/block-targeted announcement.
func AnnouncementScopeFilter(actor Actor) bson.M {
	filter := bson.M{
		"$or": []bson.M{
			{"targetRole": TargetAll},
			{"targetRole": string(actor.Role)},
		},
	}

	if actor.Role == RoleStudent {
		filter["hostel"] = bson.M{"$in": []string{TargetAllLocations, actor.Hostel}}
		filter["block"] = bson.M{"$in": []string{TargetAllLocations, actor.Block}}
	}

	return filter
}
