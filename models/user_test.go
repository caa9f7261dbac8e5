package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	user := User{Password: "hunter22"}

	require.NoError(t, user.HashPassword())
	assert.NotEqual(t, "hunter22", user.Password)

	assert.True(t, user.ComparePassword("hunter22"))
	assert.False(t, user.ComparePassword("wrong"))
}

func TestResetTokenValid(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Hour)

	user := User{ResetToken: "abc123", ResetTokenExpiry: &expiry}

	assert.True(t, user.ResetTokenValid("abc123", now))
	assert.False(t, user.ResetTokenValid("wrong", now))
	assert.False(t, user.ResetTokenValid("abc123", expiry.Add(time.Minute)))

	// no token issued
	assert.False(t, (&User{}).ResetTokenValid("abc123", now))
}

func TestApplyProfileUpdateMergesProvidedFields(t *testing.T) {
	user := User{Name: "Asha", Hostel: "A", Block: "1", Room: "101"}

	update, err := user.ApplyProfileUpdate(ProfileUpdate{
		Hostel: "B",
		Room:   "204",
	})
	require.NoError(t, err)

	assert.Equal(t, "B", user.Hostel)
	assert.Equal(t, "204", user.Room)
	assert.Equal(t, "B", update["hostel"])
	assert.Equal(t, "204", update["room"])

	// untouched fields stay out of the persisted set
	assert.Equal(t, "Asha", user.Name)
	assert.NotContains(t, update, "name")
	assert.NotContains(t, update, "block")
}

func TestApplyProfileUpdateRejectsInvalidHostel(t *testing.T) {
	user := User{Hostel: "A", Block: "1"}

	update, err := user.ApplyProfileUpdate(ProfileUpdate{Hostel: "Z", Name: "Mallory"})

	assert.Error(t, err)
	assert.Nil(t, update)
	// a rejected update must not leak partial changes
	assert.Equal(t, "A", user.Hostel)
	assert.Empty(t, user.Name)
}

func TestApplyProfileUpdateRejectsInvalidBlock(t *testing.T) {
	user := User{Hostel: "A", Block: "1"}

	update, err := user.ApplyProfileUpdate(ProfileUpdate{Block: "9"})

	assert.Error(t, err)
	assert.Nil(t, update)
	assert.Equal(t, "1", user.Block)
}

func TestValidHostelAndBlock(t *testing.T) {
	assert.True(t, ValidHostel("A"))
	assert.False(t, ValidHostel("E"))
	assert.False(t, ValidHostel(""))

	assert.True(t, ValidBlock("4"))
	assert.False(t, ValidBlock("5"))
}
