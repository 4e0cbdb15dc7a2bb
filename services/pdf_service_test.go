package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hugo-hotel/models"
)

func TestGenerateRoomPDF(t *testing.T) {
	svc := NewPDFService()

	data, err := svc.GenerateRoomPDF(models.Room{
		ID:           "abc123",
		Name:         "No. 4 King Junior Suite",
		Description:  "Modern luxury with kingsized bed.",
		Facilities:   2,
		Created:      "17/03/25",
		FacilityList: []string{"King sized bed", "Air Conditioning"},
	})
	require.NoError(t, err)

	assert.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGenerateRoomPDFWithEmptyFacilityList(t *testing.T) {
	svc := NewPDFService()

	// an empty list falls back to the default facilities block
	data, err := svc.GenerateRoomPDF(models.Room{
		ID:          "abc123",
		Name:        "Suite 9",
		Description: "Sea view",
		Created:     "17/03/25",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGenerateRoomPDFSkipsBrokenImage(t *testing.T) {
	svc := NewPDFService()

	data, err := svc.GenerateRoomPDF(models.Room{
		ID:          "abc123",
		Name:        "Suite 9",
		Description: "Sea view",
		Created:     "17/03/25",
		Image:       "data:image/png;base64,!!!not-base64!!!",
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestDecodeImageDataURL(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		data, imgType, err := decodeImageDataURL("data:image/png;base64,aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, "PNG", imgType)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("jpeg", func(t *testing.T) {
		_, imgType, err := decodeImageDataURL("data:image/jpeg;base64,aGVsbG8=")
		require.NoError(t, err)
		assert.Equal(t, "JPG", imgType)
	})

	t.Run("not a data-URL", func(t *testing.T) {
		_, _, err := decodeImageDataURL("https://example.com/room.png")
		assert.Error(t, err)
	})

	t.Run("not base64", func(t *testing.T) {
		_, _, err := decodeImageDataURL("data:image/png,rawbytes")
		assert.Error(t, err)
	})
}
