package services

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hugo-hotel/models"
)

// ErrRoomNotFound is returned when an id matches no persisted room.
var ErrRoomNotFound = errors.New("room not found")

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id string) (models.Room, error) {
	var room models.Room
	err := s.db.First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	return room, err
}

// Create persists a new room. The server owns id and created; facilities is
// recomputed from the facility list regardless of what the client sent.
func (s *RoomService) Create(input models.RoomInput) (models.Room, error) {
	room := models.Room{
		Name:         input.Name,
		Description:  input.Description,
		Facilities:   len(input.FacilityList),
		Created:      time.Now().Format(models.DateLayout),
		Image:        input.Image,
		FacilityList: datatypes.JSONSlice[string](input.FacilityList),
	}
	if room.FacilityList == nil {
		room.FacilityList = datatypes.JSONSlice[string]{}
	}

	if err := s.db.Create(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// Update rewrites every mutable field and stamps updated. Created never
// changes once assigned.
func (s *RoomService) Update(id string, input models.RoomInput) (models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return models.Room{}, err
	}

	now := time.Now().Format(models.DateLayout)
	room.Name = input.Name
	room.Description = input.Description
	room.Facilities = len(input.FacilityList)
	room.Image = input.Image
	room.FacilityList = datatypes.JSONSlice[string](input.FacilityList)
	if room.FacilityList == nil {
		room.FacilityList = datatypes.JSONSlice[string]{}
	}
	room.Updated = &now

	if err := s.db.Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) Delete(id string) error {
	result := s.db.Delete(&models.Room{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
