package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/datatypes"

	"hugo-hotel/models"
)

// Navigator receives the view transitions the editor decides on: to a
// room's detail route after a create, back to the list after a delete.
type Navigator interface {
	ToRoom(id string)
	ToList()
}

// Editor holds the edit state for a single room. Each view instance owns
// its own editor; there is no shared record store. A failed save leaves
// every field untouched.
type Editor struct {
	client   *Client
	nav      Navigator
	notifier Notifier

	room        models.Room // last persisted snapshot, or the blank template
	name        string
	description string
	image       string
	facilities  []string
}

func NewEditor(c *Client, nav Navigator) *Editor {
	return &Editor{client: c, nav: nav, notifier: c.Notifier()}
}

// Load fetches the room (or takes the blank template for the "new"
// sentinel) and resets the edit fields from it.
func (e *Editor) Load(ctx context.Context, id string) error {
	room, err := e.client.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	e.adopt(room)
	return nil
}

func (e *Editor) adopt(room models.Room) {
	e.room = room
	e.name = room.Name
	e.description = room.Description
	e.image = room.Image
	e.facilities = append([]string(nil), room.FacilityList...)
}

// Room returns the last persisted snapshot backing this editor.
func (e *Editor) Room() models.Room { return e.room }

func (e *Editor) IsNew() bool { return e.room.IsNew() }

func (e *Editor) Name() string        { return e.name }
func (e *Editor) Description() string { return e.description }
func (e *Editor) Image() string       { return e.image }

func (e *Editor) SetName(name string)        { e.name = name }
func (e *Editor) SetDescription(desc string) { e.description = desc }

// FacilityList returns a copy of the current list in insertion order.
func (e *Editor) FacilityList() []string {
	return append([]string(nil), e.facilities...)
}

// AddFacility trims the input and appends it. An empty result is a no-op;
// a value already present verbatim is rejected with a warning and leaves
// the list unchanged. Neither case reaches the network.
func (e *Editor) AddFacility(raw string) error {
	facility := strings.TrimSpace(raw)
	if facility == "" {
		return nil
	}

	for _, existing := range e.facilities {
		if existing == facility {
			e.notifier.Warning(fmt.Sprintf("%q is already in the facility list", facility))
			return ErrDuplicateFacility
		}
	}

	e.facilities = append(e.facilities, facility)
	return nil
}

// RemoveFacility removes by position; the rest keep their relative order.
func (e *Editor) RemoveFacility(i int) {
	if i < 0 || i >= len(e.facilities) {
		return
	}
	e.facilities = append(e.facilities[:i], e.facilities[i+1:]...)
}

// AttachImage stores the raw bytes as a data-URL on the edit state. The
// image travels inside the room payload on save; there is no separate
// upload step.
func (e *Editor) AttachImage(data []byte) {
	contentType := http.DetectContentType(data)
	e.image = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// AttachImageFile reads a local file and attaches it as the room image.
func (e *Editor) AttachImageFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		e.notifier.Error("Failed to read image file")
		return fmt.Errorf("read image file: %w", err)
	}
	e.AttachImage(data)
	return nil
}

func (e *Editor) RemoveImage() { e.image = "" }

func (e *Editor) input() models.RoomInput {
	return models.RoomInput{
		Name:         strings.TrimSpace(e.name),
		Description:  strings.TrimSpace(e.description),
		Facilities:   len(e.facilities),
		Image:        e.image,
		FacilityList: e.FacilityList(),
	}
}

// Save persists the edit state: create for a room still on the "new"
// sentinel, full update otherwise. On success it regenerates the room PDF
// best-effort — a PDF failure is logged and never surfaces as a save
// failure — and navigates a freshly created room to its real detail route.
func (e *Editor) Save(ctx context.Context) (models.Room, error) {
	input := e.input()
	if input.Name == "" || input.Description == "" {
		e.notifier.Warning("Name and description are required")
		return models.Room{}, ErrValidation
	}

	if e.IsNew() {
		created, err := e.client.CreateRoom(ctx, input)
		if err != nil {
			return models.Room{}, err
		}
		e.adopt(created)
		e.notifier.Success("Room created successfully")

		if _, err := e.client.GenerateRoomPDF(ctx, created.ID); err != nil {
			log.Printf("PDF generation after create of %s failed: %v", created.ID, err)
		}
		if e.nav != nil {
			e.nav.ToRoom(created.ID)
		}
		return created, nil
	}

	room := e.room
	room.Name = input.Name
	room.Description = input.Description
	room.Facilities = input.Facilities
	room.Image = input.Image
	room.FacilityList = datatypes.JSONSlice[string](input.FacilityList)

	updated, err := e.client.UpdateRoom(ctx, room)
	if err != nil {
		return models.Room{}, err
	}
	e.adopt(updated)
	e.notifier.Success("Room updated successfully")

	if _, err := e.client.GenerateRoomPDF(ctx, updated.ID); err != nil {
		log.Printf("PDF generation after update of %s failed: %v", updated.ID, err)
	}
	return updated, nil
}

// Delete removes the persisted room and navigates back to the list. Not
// reachable for unsaved rooms; the client refuses those before any call.
func (e *Editor) Delete(ctx context.Context) error {
	if err := e.client.DeleteRoom(ctx, e.room.ID); err != nil {
		return err
	}
	if e.nav != nil {
		e.nav.ToList()
	}
	return nil
}

// DownloadPDF fetches the room summary and writes it into dir as
// room-<id>-details.pdf, returning the written path.
func (e *Editor) DownloadPDF(ctx context.Context, dir string) (string, error) {
	data, err := e.client.GenerateRoomPDF(ctx, e.room.ID)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("room-%s-details.pdf", e.room.ID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.notifier.Error("Failed to save PDF file")
		return "", fmt.Errorf("write PDF file: %w", err)
	}
	return path, nil
}
