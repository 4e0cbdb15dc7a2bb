package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hugo-hotel/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}))
	return db
}

func TestCreateRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.Create(models.RoomInput{
		Name:         "No. 5 Garden Room",
		Description:  "Ground floor with garden access.",
		FacilityList: []string{"Garden access", "Double bed"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.NotEqual(t, models.IDNew, room.ID)
	assert.Equal(t, 2, room.Facilities)
	assert.Equal(t, []string{"Garden access", "Double bed"}, []string(room.FacilityList))
	assert.Equal(t, time.Now().Format(models.DateLayout), room.Created)
	assert.Nil(t, room.Updated)
}

func TestCreateRoomWithoutFacilities(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.Create(models.RoomInput{
		Name:        "Suite 9",
		Description: "Sea view",
		// a client-sent count is ignored in favor of the list length
		Facilities: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Suite 9", room.Name)
	assert.Equal(t, "Sea view", room.Description)
	assert.Equal(t, 0, room.Facilities)
	assert.NotNil(t, room.FacilityList)
	assert.Empty(t, room.FacilityList)
	assert.Equal(t, time.Now().Format(models.DateLayout), room.Created)
	assert.Nil(t, room.Updated)
}

func TestUpdateRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	created, err := svc.Create(models.RoomInput{Name: "Suite 9", Description: "Sea view"})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, models.RoomInput{
		Name:         "Suite 9",
		Description:  "Sea view",
		FacilityList: []string{"Balcony"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 1, updated.Facilities)
	assert.Equal(t, []string{"Balcony"}, []string(updated.FacilityList))
	assert.Equal(t, created.Created, updated.Created)
	require.NotNil(t, updated.Updated)

	createdAt, err := time.Parse(models.DateLayout, updated.Created)
	require.NoError(t, err)
	updatedAt, err := time.Parse(models.DateLayout, *updated.Updated)
	require.NoError(t, err)
	assert.False(t, updatedAt.Before(createdAt))
}

func TestUpdateRoomNotFound(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Update("missing", models.RoomInput{Name: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.Create(models.RoomInput{Name: "Suite 9", Description: "Sea view"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(room.ID))

	_, err = svc.GetByID(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	assert.ErrorIs(t, svc.Delete(room.ID), ErrRoomNotFound)
}

func TestListRoundTripsThroughGetByID(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Create(models.RoomInput{
		Name:         "No. 1 The Apartment",
		Description:  "Two spacious bedrooms.",
		FacilityList: []string{"Kitchen", "Living area"},
	})
	require.NoError(t, err)
	_, err = svc.Create(models.RoomInput{
		Name:        "No. 2 Luxury Double Room",
		Description: "Luxury and comfort.",
	})
	require.NoError(t, err)

	rooms, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	for _, listed := range rooms {
		fetched, err := svc.GetByID(listed.ID)
		require.NoError(t, err)
		assert.Equal(t, listed, fetched)
	}
}
