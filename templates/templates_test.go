package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func sampleViewData() ProjectViewData {
	return ProjectViewData{
		BaseURL:      "/projects/1",
		HelpURL:      "/projects/1/help/",
		NewRoomURL:   "/projects/1/rooms/new",
		ExportURL:    "/projects/1/export/excel",
		ProjectHours: "16",
		Info: ProjectInfoPanel{
			ID: "1", Project: "Boardroom <AV>", Client: "Acme", CreatedBy: "User",
			EditURL: "/projects/1/info/edit",
		},
		Rooms: []RoomTab{{ID: "r1", Name: "Room 1", Selected: true, TotalHours: "16", SelectURL: "/projects/1/rooms/r1/select"}},
		Room: &RoomPanel{
			ID: "r1", Name: "Room 1", DifficultyLabel: "Basic", DifficultyPercent: 25, MeterClass: "progress-success",
			Categories: []CategoryPanel{{
				Name: "Install", Hours: "16", Raw: "9.00", Explanation: "Rounded up to a multiple of 8",
				Subcategories: []SubcategoryPanel{{
					Category: "Install", Name: "Display", ListID: "tasks-install-display", AddURL: "/projects/1/items",
					Items: []LineItemRow{{ID: "li1", Name: "Wall Mounted Display", HoursPerTask: "3", QtyPerTask: "3", Subtotal: "9.00",
						UpdateURL: "/projects/1/items/li1", DeleteURL: "/projects/1/items/li1"}},
				}},
			}},
			TotalHours: "16",
		},
		Materials: MaterialsPanel{
			Wires:     []WireRow{{Index: 0, Type: "CAT6", Length: "100", Quantity: 1, Cost: "$50.00", UpdateURL: "/projects/1/wires/0"}},
			WireTypes: []string{"CAT6", "16/2"},
			WireTotal: "$50.00", RackTotal: "$0.00", Total: "$50.00",
		},
	}
}

func TestProjectViewContentEscapesText(t *testing.T) {
	html := renderString(t, ProjectViewContent(sampleViewData()))
	if !strings.Contains(html, "Boardroom &lt;AV&gt;") {
		t.Errorf("expected escaped project name in output")
	}
	if strings.Contains(html, "<AV>") {
		t.Errorf("raw project name leaked into output")
	}
}

func TestProjectViewContentRendersRoomAndMaterials(t *testing.T) {
	html := renderString(t, ProjectViewContent(sampleViewData()))
	for _, want := range []string{
		`id="project-view"`,
		`hx-patch="/projects/1/items/li1"`,
		`value="Wall Mounted Display"`,
		"Rounded up to a multiple of 8",
		`class="progress w-full progress-success"`,
		`<option value="CAT6" selected>CAT6</option>`,
		"$50.00",
		`hx-vals="{&#34;category&#34;:&#34;Install&#34;,&#34;subcategory&#34;:&#34;Display&#34;}"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestProjectViewContentWithoutRooms(t *testing.T) {
	data := sampleViewData()
	data.Room = nil
	data.Rooms = nil
	html := renderString(t, ProjectViewContent(data))
	if !strings.Contains(html, "No rooms") {
		t.Errorf("expected empty room message")
	}
}

func TestProjectViewContentEditingInfo(t *testing.T) {
	data := sampleViewData()
	data.Info.Editing = true
	data.Info.SaveURL = "/projects/1/info"
	data.Info.CancelURL = "/projects/1/info/cancel"
	html := renderString(t, ProjectViewContent(data))
	if !strings.Contains(html, `hx-post="/projects/1/info/cancel"`) {
		t.Errorf("expected cancel button in edit mode")
	}
	if !strings.Contains(html, `name="createdBy"`) {
		t.Errorf("expected createdBy input in edit mode")
	}
}

func TestProjectModal(t *testing.T) {
	tests := []struct {
		name string
		data ModalData
		want string
	}{
		{"add room", ModalData{Kind: ModalKindAddRoom, AddRoomURL: "/projects/1/rooms"}, `hx-post="/projects/1/rooms"`},
		{"delete room", ModalData{Kind: ModalKindDeleteRoom, RoomName: "Lobby", DeleteURL: "/projects/1/rooms/r2"}, "Delete Lobby and all"},
		{"info", ModalData{Kind: ModalKindInfo, Title: "Rounding", Body: "Install rounds to 8"}, "Install rounds to 8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderString(t, ProjectModal(tt.data))
			if !strings.Contains(html, tt.want) {
				t.Errorf("expected %q in %s", tt.want, html)
			}
		})
	}

	if html := renderString(t, ProjectModal(ModalData{})); html != "" {
		t.Errorf("expected no output without a modal, got %q", html)
	}
}

func TestProjectListContent(t *testing.T) {
	data := ProjectListData{
		Rows:       []ProjectRow{{ID: "2", Project: "Mobile App", Client: "Beta Inc", CreatedBy: "Jane Smith", URL: "/projects/2"}},
		Columns:    []SortColumn{{Label: "ID", Href: "/projects?sort=id&dir=asc", Indicator: "▼", Active: true}},
		Page:       1,
		TotalPages: 2,
		TotalCount: 11,
		NextURL:    "/projects?page=2",
		Clients:    []string{"Beta Inc"},
		Form:       ProjectForm{Errors: map[string]string{"client": "Client is required"}},
	}
	html := renderString(t, ProjectListContent(data))
	for _, want := range []string{
		`href="/projects/2"`,
		"Mobile App",
		"Page 1 of 2",
		`href="/projects?page=2"`,
		"Client is required",
		`<option value="Beta Inc">`,
		"ID ▼",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestProjectListPageWrapsLayout(t *testing.T) {
	html := renderString(t, ProjectListPage(ProjectListData{}))
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Errorf("expected full document")
	}
	if !strings.Contains(html, "No projects found") {
		t.Errorf("expected empty table message")
	}
}
