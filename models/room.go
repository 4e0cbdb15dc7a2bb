package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the display form room dates travel in, e.g. "17/03/25".
// Records store these strings directly; there is no separate wire form.
const DateLayout = "02/01/06"

// IDNew is the reserved id of a room that only exists as client-side edit
// state. It must never reach the update, delete or PDF endpoints.
const IDNew = "new"

type Room struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	// Facilities is derived: it always equals len(FacilityList) on a
	// persisted record. The server recomputes it on create and update.
	Facilities int `json:"facilities"`

	// Created is set once at persistence time. Updated stays null until the
	// first successful update and advances on every one after that.
	Created string  `json:"created" gorm:"type:varchar(8);not null"`
	Updated *string `json:"updated" gorm:"type:varchar(8)"`

	// Image is a data-URL (base64) embedded in the record, or empty.
	Image string `json:"image,omitempty" gorm:"type:longtext"`

	FacilityList datatypes.JSONSlice[string] `json:"facilityList" gorm:"column:facility_list"`
}

// BeforeCreate assigns a UUID string instead of a numeric id.
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// IsNew reports whether the room has never been persisted.
func (r *Room) IsNew() bool {
	return r.ID == IDNew
}

// RoomInput is the payload for create and update calls; the server owns
// id, created and updated.
type RoomInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Facilities   int      `json:"facilities"`
	Image        string   `json:"image,omitempty"`
	FacilityList []string `json:"facilityList"`
}
