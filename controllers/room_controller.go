package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hugo-hotel/models"
	"hugo-hotel/services"
	"hugo-hotel/utils"
)

type RoomController struct {
	rooms *services.RoomService
	pdf   *services.PDFService
}

func NewRoomController(rooms *services.RoomService, pdf *services.PDFService) *RoomController {
	return &RoomController{rooms: rooms, pdf: pdf}
}

// GET /api/v1/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.rooms.GetAll()
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/v1/rooms/:id
func (rc *RoomController) GetRoom(c *gin.Context) {
	id := c.Param("id")

	room, err := rc.rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found", id))
			return
		}
		log.Printf("get room %s failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room")
		return
	}

	c.JSON(http.StatusOK, room)
}

func bindRoomInput(c *gin.Context) (models.RoomInput, bool) {
	var input models.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Printf("room payload binding failed: %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return input, false
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room name is required")
		return input, false
	}
	if input.Description == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room description is required")
		return input, false
	}
	return input, true
}

// POST /api/v1/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	input, ok := bindRoomInput(c)
	if !ok {
		return
	}

	room, err := rc.rooms.Create(input)
	if err != nil {
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// PUT /api/v1/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	input, ok := bindRoomInput(c)
	if !ok {
		return
	}

	room, err := rc.rooms.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found", id))
			return
		}
		log.Printf("update room %s failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// DELETE /api/v1/rooms/:id
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	if err := rc.rooms.Delete(id); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found", id))
			return
		}
		log.Printf("delete room %s failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/v1/rooms/:id/pdf
func (rc *RoomController) GetRoomPDF(c *gin.Context) {
	id := c.Param("id")

	room, err := rc.rooms.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found", id))
			return
		}
		log.Printf("get room %s failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load room")
		return
	}

	data, err := rc.pdf.GenerateRoomPDF(room)
	if err != nil {
		log.Printf("generate PDF for room %s failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=room-%s-details.pdf", id))
	c.Data(http.StatusOK, "application/pdf", data)
}
