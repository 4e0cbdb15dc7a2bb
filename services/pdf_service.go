package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hugo-hotel/models"
)

// defaultFacilities pads the facilities section of the summary when a room
// has none of its own.
var defaultFacilities = []string{
	"Nespresso System",
	"E-Concierge",
	"All-night checkin",
	"Luxury Amenities",
	"Temple Spa toiletries",
	"Towels and linen",
}

// PDFService renders the printable summary sheet for a single room.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// decodeImageDataURL splits a data-URL into raw bytes and the image type
// gofpdf expects. Only the embedded base64 form is supported.
func decodeImageDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, "", fmt.Errorf("not an image data-URL")
	}

	var imgType string
	switch {
	case strings.HasPrefix(dataURL, "data:image/png"):
		imgType = "PNG"
	case strings.HasPrefix(dataURL, "data:image/jpeg"), strings.HasPrefix(dataURL, "data:image/jpg"):
		imgType = "JPG"
	case strings.HasPrefix(dataURL, "data:image/gif"):
		imgType = "GIF"
	default:
		return nil, "", fmt.Errorf("unsupported image type in data-URL")
	}

	idx := strings.Index(dataURL, "base64,")
	if idx < 0 {
		return nil, "", fmt.Errorf("data-URL is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(dataURL[idx+7:])
	if err != nil {
		return nil, "", fmt.Errorf("decode base64: %w", err)
	}
	return data, imgType, nil
}

// GenerateRoomPDF builds the room summary: hotel header band, name,
// description, the embedded image when one exists, the facility list in two
// bullet columns and a dated footer.
func (s *PDFService) GenerateRoomPDF(room models.Room) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(30, 30, 30)
	pdf.SetAutoPageBreak(true, 30)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	// corner note
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(160, 160, 160)
	pdf.CellFormat(usable, 14, "PDF Export", "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// hotel header band
	y := pdf.GetY()
	pdf.SetFillColor(128, 128, 128)
	pdf.Rect(left, y, usable, 50, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(left, y+9)
	pdf.CellFormat(usable, 16, "THE HUGO", "", 2, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(usable, 10, "GARY LANE", "", 0, "C", false, 0, "")
	pdf.SetY(y + 50 + 30)

	// room details
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.MultiCell(usable, 32, tr(room.Name), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(usable, 18, tr(room.Description), "", "L", false)
	pdf.Ln(20)

	if room.Image != "" {
		if data, imgType, err := decodeImageDataURL(room.Image); err != nil {
			// a broken image never blocks the export
			log.Printf("room %s: skipping PDF image: %v", room.ID, err)
		} else {
			opts := gofpdf.ImageOptions{ImageType: imgType}
			pdf.RegisterImageOptionsReader("room-image", opts, bytes.NewReader(data))
			imgY := pdf.GetY()
			pdf.ImageOptions("room-image", left, imgY, usable, 220, false, opts, 0, "")
			pdf.SetY(imgY + 220 + 20)
		}
	}

	facilities := []string(room.FacilityList)
	if len(facilities) == 0 {
		facilities = defaultFacilities
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(usable, 24, "Facilities", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	colW := usable / 2
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < len(facilities); i += 2 {
		pdf.CellFormat(colW, 16, tr("• "+facilities[i]), "", 0, "L", false, 0, "")
		if i+1 < len(facilities) {
			pdf.CellFormat(colW, 16, tr("• "+facilities[i+1]), "", 0, "L", false, 0, "")
		}
		pdf.Ln(16)
	}

	// footer
	pdf.Ln(40)
	now := time.Now()
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(colW, 12, tr(fmt.Sprintf("© The Hugo %d", now.Year())), "", 0, "L", false, 0, "")
	pdf.CellFormat(colW, 12, now.Format(models.DateLayout), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("build room PDF: %w", err)
	}
	return buf.Bytes(), nil
}
