package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"avestimator/estimate"
	"avestimator/services"
	"avestimator/templates"
)

func projectURL(id string) string {
	return "/projects/" + url.PathEscape(id)
}

// buildProjectViewData converts an estimate view into what the project page
// renders.
func buildProjectViewData(v estimate.View) templates.ProjectViewData {
	project := v.Project()
	base := projectURL(project.ID)

	data := templates.ProjectViewData{
		BaseURL:    base,
		HelpURL:    base + "/help/",
		NewRoomURL: base + "/rooms/new",
		ExportURL:  base + "/export/excel",
	}

	shown := project
	if draft, ok := v.Draft(); ok {
		shown = draft
	}
	data.Info = templates.ProjectInfoPanel{
		ID:        project.ID,
		Project:   shown.Project,
		Client:    shown.Client,
		CreatedBy: shown.CreatedBy,
		Editing:   v.Editing(),
		EditURL:   base + "/info/edit",
		SaveURL:   base + "/info",
		CancelURL: base + "/info/cancel",
	}

	var projectHours float64
	for _, room := range v.Rooms() {
		totals := v.RoomTotals(room.ID)
		projectHours += totals.TotalHours
		data.Rooms = append(data.Rooms, templates.RoomTab{
			ID:         room.ID,
			Name:       room.Name,
			SelectURL:  roomURL(base, room.ID) + "/select",
			Selected:   room.ID == v.SelectedRoomID(),
			TotalHours: services.FormatHours(totals.TotalHours),
		})
	}
	data.ProjectHours = services.FormatHours(projectHours)

	if room, ok := v.SelectedRoom(); ok {
		panel := buildRoomPanel(v, base, room)
		data.Room = &panel
	}
	data.Materials = buildMaterialsPanel(v, base)
	data.Modal = buildModalData(v, base)
	return data
}

func roomURL(base, roomID string) string {
	return base + "/rooms/" + url.PathEscape(roomID)
}

func buildRoomPanel(v estimate.View, base string, room estimate.Room) templates.RoomPanel {
	difficulty := room.Difficulty()
	totals := v.RoomTotals(room.ID)
	panel := templates.RoomPanel{
		ID:                room.ID,
		Name:              room.Name,
		Feet:              room.CeilingHeight.Feet,
		Inches:            room.CeilingHeight.Inches,
		DifficultyLabel:   string(difficulty.Label),
		DifficultyPercent: difficulty.FillPercent(),
		MeterClass:        difficulty.MeterClass(),
		RenameURL:         roomURL(base, room.ID) + "/rename",
		CeilingURL:        roomURL(base, room.ID) + "/ceiling",
		DeleteURL:         roomURL(base, room.ID) + "/delete",
		TotalHours:        services.FormatHours(totals.TotalHours),
	}

	tables := v.Tables()
	for ci, ct := range totals.Categories {
		cat := templates.CategoryPanel{
			Name:        ct.Category,
			Hours:       services.FormatHours(ct.Hours),
			Raw:         services.FormatSubtotal(ct.Raw),
			Explanation: ct.Explanation,
		}
		for si, sub := range tables.Subcategories(ct.Category) {
			items := room.Items(ct.Category, sub)
			sp := templates.SubcategoryPanel{
				Category: ct.Category,
				Name:     sub,
				ListID:   fmt.Sprintf("tasks-%d-%d", ci, si),
				Subtotal: services.FormatSubtotal(services.SubcategorySubtotal(items)),
				AddURL:   base + "/items",
			}
			for _, li := range items {
				itemURL := base + "/items/" + url.PathEscape(li.ID)
				sp.Items = append(sp.Items, templates.LineItemRow{
					ID:           li.ID,
					Name:         li.Name,
					HoursPerTask: services.FormatHours(li.HoursPerTask),
					QtyPerTask:   services.FormatHours(li.QtyPerTask),
					Subtotal:     services.FormatSubtotal(li.Subtotal()),
					UpdateURL:    itemURL,
					DeleteURL:    itemURL,
				})
			}
			for _, t := range tables.TaskOptions(ct.Category, sub) {
				sp.Options = append(sp.Options, templates.TaskOption{
					Label: t.Label,
					Hours: services.FormatHours(t.Hours),
				})
			}
			cat.Subcategories = append(cat.Subcategories, sp)
		}
		panel.Categories = append(panel.Categories, cat)
	}
	return panel
}

func buildMaterialsPanel(v estimate.View, base string) templates.MaterialsPanel {
	totals := v.MaterialsTotals()
	tables := v.Tables()
	panel := templates.MaterialsPanel{
		WireTotal:  services.FormatUSD(totals.Wires),
		RackTotal:  services.FormatUSD(totals.RackMaterials),
		Total:      services.FormatUSD(totals.Total),
		AddWireURL: base + "/wires",
		AddRackURL: base + "/rack-materials",
	}
	if tables != nil {
		panel.WireTypes = tables.WireTypes()
		panel.RackMaterialTypes = tables.RackMaterialTypes()
	}
	for i, w := range v.Wires() {
		panel.Wires = append(panel.Wires, templates.WireRow{
			Index:     i,
			Type:      w.Type,
			Length:    w.Length,
			Quantity:  w.Quantity,
			Cost:      services.FormatUSD(w.Cost),
			UpdateURL: base + "/wires/" + strconv.Itoa(i),
		})
	}
	for i, m := range v.RackMaterials() {
		panel.RackMaterials = append(panel.RackMaterials, templates.RackMaterialRow{
			Index:     i,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Cost:      services.FormatUSD(m.Cost),
			UpdateURL: base + "/rack-materials/" + strconv.Itoa(i),
		})
	}
	return panel
}

func buildModalData(v estimate.View, base string) templates.ModalData {
	m := v.Modal()
	data := templates.ModalData{CloseURL: base + "/modal/close"}
	switch m.Kind() {
	case estimate.ModalAddRoom:
		data.Kind = templates.ModalKindAddRoom
		data.AddRoomURL = base + "/rooms"
	case estimate.ModalDeleteRoom:
		id, _ := m.RoomID()
		room, ok := v.Room(id)
		if !ok {
			return templates.ModalData{}
		}
		data.Kind = templates.ModalKindDeleteRoom
		data.RoomName = room.Name
		data.DeleteURL = roomURL(base, id)
	case estimate.ModalInfo:
		kind, _ := m.Info()
		text := helpText(kind)
		data.Kind = templates.ModalKindInfo
		data.Title = text.Title
		data.Body = text.Body
	default:
		return templates.ModalData{}
	}
	return data
}
