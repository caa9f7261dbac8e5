package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Plumbing    IssueCategory = "plumbing"
	Electrical  IssueCategory = "electrical"
	Cleanliness IssueCategory = "cleanliness"
	Internet    IssueCategory = "internet"
	Furniture   IssueCategory = "furniture"
	Other       IssueCategory = "other"
)

// IssuePriority enum
type IssuePriority string

const (
	Low       IssuePriority = "low"
	Medium    IssuePriority = "medium"
	High      IssuePriority = "high"
	Emergency IssuePriority = "emergency"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "reported"
	Assigned   IssueStatus = "assigned"
	InProgress IssueStatus = "inprogress"
	Resolved   IssueStatus = "resolved"
	Closed     IssueStatus = "closed"
)

// IssueVisibility enum
type IssueVisibility string

const (
	Public  IssueVisibility = "public"
	Private IssueVisibility = "private"
)

var validCategories = map[IssueCategory]bool{
	Plumbing: true, Electrical: true, Cleanliness: true,
	Internet: true, Furniture: true, Other: true,
}

var validPriorities = map[IssuePriority]bool{
	Low: true, Medium: true, High: true, Emergency: true,
}

var validStatuses = map[IssueStatus]bool{
	Reported: true, Assigned: true, InProgress: true,
	Resolved: true, Closed: true,
}

var validVisibilities = map[IssueVisibility]bool{
	Public: true, Private: true,
}

// NormalizeCategory lower-cases the submitted category value
func NormalizeCategory(s string) IssueCategory {
	return IssueCategory(strings.ToLower(s))
}

func (c IssueCategory) Valid() bool { return validCategories[c] }

func (p IssuePriority) Valid() bool { return validPriorities[p] }

func (s IssueStatus) Valid() bool { return validStatuses[s] }

func (v IssueVisibility) Valid() bool { return validVisibilities[v] }

// Attachment is a file attached to an issue at creation time.
// FileType holds the submitted MIME type as-is; the frontend decides
// image-vs-video rendering by prefix match.
type Attachment struct {
	FileName string `bson:"fileName" json:"fileName"`
	FileURL  string `bson:"fileUrl" json:"fileUrl"`
	FileType string `bson:"fileType" json:"fileType"`
}

// StatusTimestamps records when each lifecycle status was first reached.
// Reported is set at creation; every other field is written at most once.
type StatusTimestamps struct {
	Reported   time.Time  `bson:"reported" json:"reported"`
	Assigned   *time.Time `bson:"assigned,omitempty" json:"assigned,omitempty"`
	InProgress *time.Time `bson:"inProgress,omitempty" json:"inProgress,omitempty"`
	Resolved   *time.Time `bson:"resolved,omitempty" json:"resolved,omitempty"`
	Closed     *time.Time `bson:"closed,omitempty" json:"closed,omitempty"`
}

// Issue represents a maintenance issue reported by a student.
// Hostel, block and room are a snapshot of the creator's location at
// creation time and are not kept in sync with later profile edits.
type Issue struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Category         IssueCategory      `bson:"category" json:"category"`
	Priority         IssuePriority      `bson:"priority" json:"priority"`
	Status           IssueStatus        `bson:"status" json:"status"`
	Visibility       IssueVisibility    `bson:"visibility" json:"visibility"`
	AssignedTo       string             `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	StatusTimestamps StatusTimestamps   `bson:"statusTimestamps" json:"statusTimestamps"`
	Hostel           string             `bson:"hostel,omitempty" json:"hostel,omitempty"`
	Block            string             `bson:"block,omitempty" json:"block,omitempty"`
	Room             string             `bson:"room,omitempty" json:"room,omitempty"`
	CreatedBy        primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Attachments      []Attachment       `bson:"attachments" json:"attachments"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StatusUpdate is the optional-field input of a status-update request.
// Nil fields are left untouched.
type StatusUpdate struct {
	Status     *IssueStatus
	AssignedTo *string
}

// StatusChange records what ApplyStatusUpdate wrote: scalar fields for a
// plain $set, and the names of statusTimestamps fields that were newly
// stamped (persisted with a set-only-if-unset guard per field).
type StatusChange struct {
	Fields     bson.M
	Timestamps map[string]time.Time
}

// Changed reports whether the update touched anything.
func (ch StatusChange) Changed() bool {
	return len(ch.Fields) > 0
}

// ApplyStatusUpdate applies a status-update request against the issue.
//
// Assignment: a provided assignee always overwrites the current value, but
// the assigned timestamp is stamped only on first assignment. Status: only
// written when it differs from the current status; the matching timestamp
// is stamped on first entry into inprogress/resolved/closed. Timestamps,
// once set, are never overwritten. No transition graph is enforced; any
// valid status value is accepted from any current status.
func (i *Issue) ApplyStatusUpdate(u StatusUpdate, now time.Time) StatusChange {
	change := StatusChange{Fields: bson.M{}, Timestamps: map[string]time.Time{}}

	if u.AssignedTo != nil && *u.AssignedTo != "" {
		i.AssignedTo = *u.AssignedTo
		change.Fields["assignedTo"] = i.AssignedTo

		if i.StatusTimestamps.Assigned == nil {
			t := now
			i.StatusTimestamps.Assigned = &t
			change.Timestamps["assigned"] = now
		}
	}

	if u.Status != nil && *u.Status != i.Status {
		i.Status = *u.Status
		change.Fields["status"] = i.Status

		switch i.Status {
		case InProgress:
			if i.StatusTimestamps.InProgress == nil {
				t := now
				i.StatusTimestamps.InProgress = &t
				change.Timestamps["inProgress"] = now
			}
		case Resolved:
			if i.StatusTimestamps.Resolved == nil {
				t := now
				i.StatusTimestamps.Resolved = &t
				change.Timestamps["resolved"] = now
			}
		case Closed:
			if i.StatusTimestamps.Closed == nil {
				t := now
				i.StatusTimestamps.Closed = &t
				change.Timestamps["closed"] = now
			}
		}
	}

	if change.Changed() {
		i.UpdatedAt = now
		change.Fields["updatedAt"] = now
	}

	return change
}
