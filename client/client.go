// Package client wraps the room REST API for view code. Nothing above it
// talks to the network directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"gorm.io/datatypes"

	"hugo-hotel/models"
)

// DefaultTimeout bounds every request; exceeding it aborts the in-flight
// call and surfaces the same error path as a transport failure.
const DefaultTimeout = 10 * time.Second

// Notifier is the user-facing notification surface (modals in the
// terminal dashboard, toasts in a web frontend).
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
}

// LogNotifier writes notifications to the process log. It is the fallback
// when no UI is attached.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("notice: %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("error: %s", msg) }
func (LogNotifier) Warning(msg string) { log.Printf("warning: %s", msg) }

type Client struct {
	baseURL  string
	http     *http.Client
	notifier Notifier
}

// New returns a client for the API at baseURL (e.g.
// "http://localhost:8080/api/v1"). A nil notifier falls back to the log.
func New(baseURL string, notifier Notifier) *Client {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: DefaultTimeout},
		notifier: notifier,
	}
}

func (c *Client) Notifier() Notifier {
	return c.notifier
}

// NewRoomTemplate builds the blank client-side room a create flow edits:
// sentinel id, created stamped now, never sent anywhere as-is.
func NewRoomTemplate() models.Room {
	return models.Room{
		ID:           models.IDNew,
		Created:      time.Now().Format(models.DateLayout),
		FacilityList: datatypes.JSONSlice[string]{},
	}
}

// isUnsaved covers the sentinel plus the two "no id" forms a route can
// produce: an empty segment and the literal "undefined" a javascript
// frontend sends for a missing route param.
func isUnsaved(id string) bool {
	return id == "" || id == models.IDNew || id == "undefined"
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends the request and turns transport failures and non-2xx statuses
// into errors. The caller owns the body on success.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	return resp, nil
}

// readErrorMessage pulls the "error" field out of the backend's error
// envelope; a body in any other shape is ignored.
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}

func (c *Client) doJSON(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// ListRooms fetches every room. It degrades gracefully: any failure is
// logged and notified and an empty slice comes back, so the list view
// cannot tell "failed" from "no rooms". Known information loss, kept
// deliberately.
func (c *Client) ListRooms(ctx context.Context) []models.Room {
	req, err := c.newRequest(ctx, http.MethodGet, "/rooms", nil)
	if err == nil {
		var rooms []models.Room
		if err = c.doJSON(req, &rooms); err == nil {
			if rooms == nil {
				rooms = []models.Room{}
			}
			return rooms
		}
	}

	log.Printf("list rooms: %v", err)
	c.notifier.Error("Failed to load rooms")
	return []models.Room{}
}

// GetRoom fetches one room. For an absent id, the literal "undefined" or
// the "new" sentinel it returns a fresh blank template without touching
// the network.
func (c *Client) GetRoom(ctx context.Context, id string) (models.Room, error) {
	if isUnsaved(id) {
		return NewRoomTemplate(), nil
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/rooms/"+id, nil)
	if err != nil {
		return models.Room{}, err
	}

	var room models.Room
	if err := c.doJSON(req, &room); err != nil {
		log.Printf("get room %s: %v", id, err)
		c.notifier.Error("Failed to fetch room data")
		return models.Room{}, err
	}
	return room, nil
}

// CreateRoom persists a new room and returns the server's canonical record
// with its assigned id and created stamp.
func (c *Client) CreateRoom(ctx context.Context, input models.RoomInput) (models.Room, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/rooms", input)
	if err != nil {
		return models.Room{}, err
	}

	var room models.Room
	if err := c.doJSON(req, &room); err != nil {
		log.Printf("create room: %v", err)
		c.notifier.Error("Failed to create room")
		return models.Room{}, err
	}
	return room, nil
}

// UpdateRoom sends the full record. A room still carrying the "new"
// sentinel has never been persisted, so the update becomes a create.
func (c *Client) UpdateRoom(ctx context.Context, room models.Room) (models.Room, error) {
	if room.IsNew() {
		return c.CreateRoom(ctx, models.RoomInput{
			Name:         room.Name,
			Description:  room.Description,
			Facilities:   len(room.FacilityList),
			Image:        room.Image,
			FacilityList: []string(room.FacilityList),
		})
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/rooms/"+room.ID, room)
	if err != nil {
		return models.Room{}, err
	}

	var updated models.Room
	if err := c.doJSON(req, &updated); err != nil {
		log.Printf("update room %s: %v", room.ID, err)
		c.notifier.Error("Failed to update room")
		return models.Room{}, err
	}
	return updated, nil
}

// DeleteRoom removes a persisted room. It refuses the "new" sentinel
// before any network call.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	if isUnsaved(id) {
		c.notifier.Error("Cannot delete a room that has not been saved")
		return fmt.Errorf("delete room: %w", ErrUnsavedRoom)
	}

	req, err := c.newRequest(ctx, http.MethodDelete, "/rooms/"+id, nil)
	if err != nil {
		return err
	}

	if err := c.doJSON(req, nil); err != nil {
		log.Printf("delete room %s: %v", id, err)
		c.notifier.Error("Failed to delete room")
		return err
	}

	c.notifier.Success("Room deleted successfully")
	return nil
}

// GenerateRoomPDF requests the room summary PDF and returns its bytes. It
// fails fast, without a network call, for unsaved records.
func (c *Client) GenerateRoomPDF(ctx context.Context, id string) ([]byte, error) {
	if isUnsaved(id) {
		c.notifier.Error("Cannot generate a PDF for an unsaved room")
		return nil, fmt.Errorf("generate room PDF: %w", ErrUnsavedRoom)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/rooms/"+id+"/pdf", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.do(req)
	if err != nil {
		log.Printf("generate PDF for room %s: %v", id, err)
		c.notifier.Error("Failed to generate PDF")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("read PDF for room %s: %v", id, err)
		c.notifier.Error("Failed to generate PDF")
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.notifier.Success("Room PDF generated")
	return data, nil
}
