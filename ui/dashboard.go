// Package ui is the terminal dashboard: a room list page and a detail/edit
// page over the REST client, with modals standing in for toasts.
package ui

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"hugo-hotel/client"
	"hugo-hotel/models"
)

var (
	app   *tview.Application
	pages *tview.Pages
	api   *client.Client

	roomTable *tview.Table
	tableRows []string // row index-1 -> room id
)

// modalNotifier surfaces client notifications as modals over whatever page
// is active.
type modalNotifier struct{}

func (modalNotifier) Success(msg string) { showInfoModal("Success", msg) }
func (modalNotifier) Error(msg string)   { showInfoModal("Error", msg) }
func (modalNotifier) Warning(msg string) { showInfoModal("Warning", msg) }

// dashboardNavigator maps the editor's route changes onto pages.
type dashboardNavigator struct{}

func (dashboardNavigator) ToRoom(id string) { openRoomDetail(id) }
func (dashboardNavigator) ToList()          { showRoomList() }

// StartDashboard connects to the API at serverURL and runs the dashboard
// until the user quits with Ctrl-Q.
func StartDashboard(serverURL string) error {
	if serverURL == "" {
		serverURL = "http://localhost:8080/api/v1"
	} else if !strings.HasSuffix(serverURL, "/api/v1") {
		if strings.HasSuffix(serverURL, "/") {
			serverURL += "api/v1"
		} else {
			serverURL += "/api/v1"
		}
	}

	api = client.New(serverURL, modalNotifier{})

	app = tview.NewApplication()
	pages = tview.NewPages()

	pages.AddPage("rooms", createRoomListPage(), true, true)
	refreshRoomList()

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlQ {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(pages, true).EnableMouse(true).Run()
}

func createRoomListPage() tview.Primitive {
	roomTable = tview.NewTable()
	roomTable.SetSelectable(true, false).SetFixed(1, 0)
	roomTable.SetSelectedFunc(func(row, col int) {
		if row-1 >= 0 && row-1 < len(tableRows) {
			openRoomDetail(tableRows[row-1])
		}
	})
	roomTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'n':
			openRoomDetail(models.IDNew)
			return nil
		case 'r':
			refreshRoomList()
			return nil
		}
		return event
	})

	return tview.NewFrame(roomTable).
		AddText("Hugo Hotel — Rooms", true, tview.AlignCenter, tcell.ColorWhite).
		AddText("enter: edit   n: new room   r: refresh   ctrl-q: quit", false, tview.AlignCenter, tcell.ColorGray)
}

func setRoomTableHeader() {
	headers := []string{"Name", "Facilities", "Created", "Updated"}
	for col, h := range headers {
		roomTable.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}
}

// refreshRoomList reloads the table. The list cannot distinguish a failed
// fetch from zero rooms; the client swallows list errors and returns empty.
func refreshRoomList() {
	roomTable.Clear()
	setRoomTableHeader()
	roomTable.SetCell(1, 0, tview.NewTableCell("Loading rooms...").SetSelectable(false))
	tableRows = nil

	rooms := api.ListRooms(context.Background())

	roomTable.Clear()
	setRoomTableHeader()

	if len(rooms) == 0 {
		roomTable.SetCell(1, 0, tview.NewTableCell("No rooms").SetSelectable(false))
		return
	}

	for i, room := range rooms {
		updated := "-"
		if room.Updated != nil {
			updated = *room.Updated
		}
		row := i + 1
		roomTable.SetCell(row, 0, tview.NewTableCell(room.Name).SetExpansion(2))
		roomTable.SetCell(row, 1, tview.NewTableCell(fmt.Sprintf("%d", room.Facilities)))
		roomTable.SetCell(row, 2, tview.NewTableCell(room.Created))
		roomTable.SetCell(row, 3, tview.NewTableCell(updated))
		tableRows = append(tableRows, room.ID)
	}
	roomTable.Select(1, 0)
}

func showRoomList() {
	if pages.HasPage("detail") {
		pages.RemovePage("detail")
	}
	pages.SwitchToPage("rooms")
	refreshRoomList()
}

func openRoomDetail(id string) {
	editor := client.NewEditor(api, dashboardNavigator{})
	if err := editor.Load(context.Background(), id); err != nil {
		return // already notified
	}

	if pages.HasPage("detail") {
		pages.RemovePage("detail")
	}
	pages.AddPage("detail", createRoomDetailPage(editor), true, true)
}

func createRoomDetailPage(ed *client.Editor) tview.Primitive {
	facilityList := tview.NewList()
	facilityList.ShowSecondaryText(false)
	renderFacilities := func() {
		facilityList.Clear()
		for _, f := range ed.FacilityList() {
			facilityList.AddItem(f, "", 0, nil)
		}
	}
	facilityList.SetSelectedFunc(func(i int, _ string, _ string, _ rune) {
		ed.RemoveFacility(i)
		renderFacilities()
	})
	renderFacilities()
	facilityList.SetBorder(true).SetTitle(" Facilities (enter removes) ")

	form := tview.NewForm()
	form.AddInputField("Title", ed.Name(), 50, nil, ed.SetName)
	form.AddInputField("Description", ed.Description(), 50, nil, ed.SetDescription)
	form.AddInputField("Add facility", "", 30, nil, nil)
	form.AddButton("Add facility", func() {
		field := form.GetFormItemByLabel("Add facility").(*tview.InputField)
		if err := ed.AddFacility(field.GetText()); err == nil {
			field.SetText("")
			renderFacilities()
		}
	})
	form.AddInputField("Image file", "", 50, nil, nil)
	form.AddButton("Attach image", func() {
		field := form.GetFormItemByLabel("Image file").(*tview.InputField)
		path := strings.TrimSpace(field.GetText())
		if path == "" {
			return
		}
		if err := ed.AttachImageFile(path); err == nil {
			showInfoModal("Success", "Image attached")
		}
	})
	form.AddButton("Remove image", func() {
		ed.RemoveImage()
	})
	form.AddButton("Save", func() {
		// failures are already notified and the edit state is preserved
		_, _ = ed.Save(context.Background())
	})
	if !ed.IsNew() {
		form.AddButton("Download PDF", func() {
			dir, err := os.Getwd()
			if err != nil {
				dir = "."
			}
			if path, err := ed.DownloadPDF(context.Background(), dir); err == nil {
				showInfoModal("Success", "Saved "+path)
			}
		})
		form.AddButton("Delete", func() {
			confirmDelete(ed)
		})
	}
	form.AddButton("Back", func() {
		showRoomList()
	})

	title := " New room "
	if !ed.IsNew() {
		title = " Room details "
	}
	form.SetBorder(true).SetTitle(title).SetTitleAlign(tview.AlignLeft)

	return tview.NewFlex().
		AddItem(form, 0, 2, true).
		AddItem(facilityList, 0, 1, false)
}

func confirmDelete(ed *client.Editor) {
	modal := tview.NewModal().
		SetText("Delete this room? This cannot be undone.").
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(_ int, label string) {
			pages.RemovePage("confirm")
			if label == "Delete" {
				_ = ed.Delete(context.Background())
			}
		})
	pages.AddPage("confirm", modal, false, true)
}

// showInfoModal displays a notification modal with a message.
func showInfoModal(title, message string) {
	if app == nil || pages == nil {
		log.Printf("%s: %s", title, message)
		return
	}

	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			pages.RemovePage("modal")
		})

	modal.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter)

	pages.AddPage("modal", modal, false, true)
}
