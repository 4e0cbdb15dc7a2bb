package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hugo-hotel/controllers"
	"hugo-hotel/models"
	"hugo-hotel/routes"
	"hugo-hotel/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Room{}))

	rc := controllers.NewRoomController(services.NewRoomService(db), services.NewPDFService())
	srv := httptest.NewServer(routes.SetupRouter(rc))
	t.Cleanup(srv.Close)
	return srv
}

func postRoom(t *testing.T, srv *httptest.Server, input models.RoomInput) (models.Room, *http.Response) {
	t.Helper()

	body, err := json.Marshal(input)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/v1/rooms", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var room models.Room
	if resp.StatusCode == http.StatusCreated {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&room))
	}
	return room, resp
}

func TestCreateRoomEndpoint(t *testing.T) {
	srv := newTestServer(t)

	room, resp := postRoom(t, srv, models.RoomInput{
		Name:        "Suite 9",
		Description: "Sea view",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.NotEmpty(t, room.ID)
	assert.NotEqual(t, models.IDNew, room.ID)
	assert.Equal(t, "Suite 9", room.Name)
	assert.Equal(t, "Sea view", room.Description)
	assert.Equal(t, 0, room.Facilities)
	assert.Equal(t, time.Now().Format(models.DateLayout), room.Created)
	assert.Nil(t, room.Updated)
}

func TestCreateRoomValidation(t *testing.T) {
	srv := newTestServer(t)

	t.Run("missing name", func(t *testing.T) {
		_, resp := postRoom(t, srv, models.RoomInput{Name: "   ", Description: "Sea view"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing description", func(t *testing.T) {
		_, resp := postRoom(t, srv, models.RoomInput{Name: "Suite 9"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetRoomEndpoint(t *testing.T) {
	srv := newTestServer(t)

	created, _ := postRoom(t, srv, models.RoomInput{
		Name:         "Suite 9",
		Description:  "Sea view",
		FacilityList: []string{"Balcony", "Minibar"},
	})

	resp, err := http.Get(srv.URL + "/api/v1/rooms/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var room models.Room
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&room))
	assert.Equal(t, created, room)

	t.Run("unknown id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/rooms/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateRoomEndpoint(t *testing.T) {
	srv := newTestServer(t)

	created, _ := postRoom(t, srv, models.RoomInput{Name: "Suite 9", Description: "Sea view"})

	body, err := json.Marshal(models.RoomInput{
		Name:         "Suite 9",
		Description:  "Sea view",
		FacilityList: []string{"Balcony"},
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/rooms/"+created.ID, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var room models.Room
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&room))
	assert.Equal(t, 1, room.Facilities)
	assert.Equal(t, []string{"Balcony"}, []string(room.FacilityList))
	assert.Equal(t, created.Created, room.Created)
	require.NotNil(t, room.Updated)
}

func TestDeleteRoomEndpoint(t *testing.T) {
	srv := newTestServer(t)

	created, _ := postRoom(t, srv, models.RoomInput{Name: "Suite 9", Description: "Sea view"})

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/rooms/"+created.ID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// the record is gone afterwards
	getResp, err := http.Get(srv.URL + "/api/v1/rooms/" + created.ID)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)

	// deleting again reports not found
	resp2, err := http.DefaultClient.Do(req.Clone(req.Context()))
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestRoomPDFEndpoint(t *testing.T) {
	srv := newTestServer(t)

	created, _ := postRoom(t, srv, models.RoomInput{
		Name:         "Suite 9",
		Description:  "Sea view",
		FacilityList: []string{"Balcony"},
	})

	resp, err := http.Get(srv.URL + "/api/v1/rooms/" + created.ID + "/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t,
		fmt.Sprintf("attachment; filename=room-%s-details.pdf", created.ID),
		resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	t.Run("unknown id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/rooms/nope/pdf")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
