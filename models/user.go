package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserRole enum
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleManagement UserRole = "management"
)

var validHostels = map[string]bool{"A": true, "B": true, "C": true, "D": true}
var validBlocks = map[string]bool{"1": true, "2": true, "3": true, "4": true}

// ValidHostel and ValidBlock check the registration enums for students.
func ValidHostel(h string) bool { return validHostels[h] }

func ValidBlock(b string) bool { return validBlocks[b] }

// User is a hostel resident or a management operator. Hostel, block and
// room are only meaningful for students.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password,omitempty" json:"-"`
	Role             UserRole           `bson:"role" json:"role"`
	Hostel           string             `bson:"hostel" json:"hostel"`
	Block            string             `bson:"block" json:"block"`
	Room             string             `bson:"room,omitempty" json:"room,omitempty"`
	ProfileImage     string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ResetToken       string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpiry *time.Time         `bson:"resetTokenExpiry,omitempty" json:"-"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// ProfileUpdate is the optional-field input of a profile edit. Empty
// fields are left untouched.
type ProfileUpdate struct {
	Name   string
	Email  string
	Hostel string
	Block  string
	Room   string
}

// ApplyProfileUpdate merges the update into the user and returns the
// fields to persist. Hostel and block must stay within the registration
// enums; an out-of-range value rejects the whole update.
func (u *User) ApplyProfileUpdate(p ProfileUpdate) (bson.M, error) {
	update := bson.M{}

	if p.Hostel != "" && !ValidHostel(p.Hostel) {
		return nil, fmt.Errorf("hostel must be A, B, C, or D")
	}
	if p.Block != "" && !ValidBlock(p.Block) {
		return nil, fmt.Errorf("block must be 1, 2, 3, or 4")
	}

	if p.Name != "" {
		u.Name = p.Name
		update["name"] = p.Name
	}
	if p.Email != "" {
		u.Email = p.Email
		update["email"] = p.Email
	}
	if p.Hostel != "" {
		u.Hostel = p.Hostel
		update["hostel"] = p.Hostel
	}
	if p.Block != "" {
		u.Block = p.Block
		update["block"] = p.Block
	}
	if p.Room != "" {
		u.Room = p.Room
		update["room"] = p.Room
	}

	return update, nil
}

// ResetTokenValid checks the one-shot reset token against its expiry.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.ResetToken == "" || u.ResetToken != token {
		return false
	}
	if u.ResetTokenExpiry == nil || now.After(*u.ResetTokenExpiry) {
		return false
	}
	return true
}
