// Package estimate holds the in-memory state of one project's estimate:
// rooms, their labor line items, cable runs, rack materials, the selected
// room, the project info edit buffer and the open dialog.
//
// View is a value type. Every operation returns a new View and leaves the
// receiver untouched; slices and maps are copied along the path being
// changed, so earlier snapshots stay valid after later edits.
package estimate

import (
	"fmt"

	"github.com/google/uuid"

	"avestimator/services"
)

// DefaultRoomName is the room every new project view starts with.
const DefaultRoomName = "Room 1"

type Room struct {
	ID            string
	Name          string
	CeilingHeight services.CeilingHeight
	LineItems     services.RoomLineItems
}

// Difficulty classifies the room from its ceiling height.
func (r Room) Difficulty() services.Difficulty {
	return services.ClassifyDifficulty(r.CeilingHeight)
}

// Items returns the line items of one subcategory list.
func (r Room) Items(category, subcategory string) []services.LineItem {
	return r.LineItems[category][subcategory]
}

// LineItemPatch carries the fields of one line-item edit. Nil fields are
// left unchanged.
type LineItemPatch struct {
	Name         *string
	HoursPerTask *float64
	QtyPerTask   *float64
}

type View struct {
	tables *services.ReferenceTables

	project services.ProjectInfo
	draft   *services.ProjectInfo

	rooms    []Room
	selected string
	roomSeq  int

	wires     []services.Wire
	materials []services.RackMaterial

	modal Modal
}

// NewView starts a project view with a single default room selected.
func NewView(tables *services.ReferenceTables, project services.ProjectInfo) View {
	v := View{tables: tables, project: project}
	v, _ = v.AddRoom(DefaultRoomName)
	return v
}

func (v View) Tables() *services.ReferenceTables { return v.tables }

// ── Project info ────────────────────────────────────────────────────────

func (v View) Project() services.ProjectInfo { return v.project }

// Draft returns the staged project info while an edit is open.
func (v View) Draft() (services.ProjectInfo, bool) {
	if v.draft == nil {
		return services.ProjectInfo{}, false
	}
	return *v.draft, true
}

func (v View) Editing() bool { return v.draft != nil }

// BeginEditProject stages a copy of the project info for editing.
func (v View) BeginEditProject() View {
	draft := v.project
	v.draft = &draft
	return v
}

// EditDraft replaces the editable fields of the staged copy. The id never
// changes. Without an open edit the view is returned as is.
func (v View) EditDraft(project, client, createdBy string) View {
	if v.draft == nil {
		return v
	}
	draft := *v.draft
	draft.Project = services.SanitizeText(project)
	draft.Client = services.SanitizeText(client)
	draft.CreatedBy = services.SanitizeText(createdBy)
	v.draft = &draft
	return v
}

// SaveProject commits the staged copy.
func (v View) SaveProject() View {
	if v.draft == nil {
		return v
	}
	v.project = *v.draft
	v.draft = nil
	return v
}

// CancelEditProject discards the staged copy.
func (v View) CancelEditProject() View {
	v.draft = nil
	return v
}

// ── Rooms ───────────────────────────────────────────────────────────────

// Rooms returns the rooms in creation order.
func (v View) Rooms() []Room {
	return append([]Room(nil), v.rooms...)
}

func (v View) Room(id string) (Room, bool) {
	i := v.roomIndex(id)
	if i < 0 {
		return Room{}, false
	}
	return v.rooms[i], true
}

func (v View) SelectedRoomID() string { return v.selected }

func (v View) SelectedRoom() (Room, bool) {
	return v.Room(v.selected)
}

func (v View) roomIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, r := range v.rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// AddRoom appends a room, selects it and closes the add-room dialog. The
// room starts with one blank Project Management line item. A name that is
// empty after sanitising leaves the view unchanged and returns "".
func (v View) AddRoom(name string) (View, string) {
	name = services.SanitizeText(name)
	if name == "" {
		return v, ""
	}

	v.roomSeq++
	room := Room{
		ID:   fmt.Sprintf("room-%d", v.roomSeq),
		Name: name,
		LineItems: services.RoomLineItems{
			services.CategoryProjectManagement: {
				services.CategoryProjectManagement: {newLineItem()},
			},
		},
	}

	rooms := make([]Room, 0, len(v.rooms)+1)
	rooms = append(rooms, v.rooms...)
	v.rooms = append(rooms, room)
	v.selected = room.ID
	if v.modal.Kind() == ModalAddRoom {
		v.modal = NoModal()
	}
	return v, room.ID
}

// RenameRoom sets a new sanitised name. Empty names are ignored.
func (v View) RenameRoom(id, name string) View {
	name = services.SanitizeText(name)
	if name == "" {
		return v
	}
	return v.updateRoom(id, func(r Room) Room {
		r.Name = name
		return r
	})
}

// SetCeilingHeight stores the height clamped to feet >= 0, inches 0-11.
func (v View) SetCeilingHeight(id string, h services.CeilingHeight) View {
	return v.updateRoom(id, func(r Room) Room {
		r.CeilingHeight = h.Normalize()
		return r
	})
}

// SelectRoom changes the selected room. Unknown ids are ignored.
func (v View) SelectRoom(id string) View {
	if v.roomIndex(id) < 0 {
		return v
	}
	v.selected = id
	return v
}

// DeleteRoom removes a room with all of its line items. When the deleted
// room was selected the first remaining room is selected, or none.
func (v View) DeleteRoom(id string) View {
	i := v.roomIndex(id)
	if i < 0 {
		return v
	}

	rooms := make([]Room, 0, len(v.rooms)-1)
	rooms = append(rooms, v.rooms[:i]...)
	rooms = append(rooms, v.rooms[i+1:]...)
	v.rooms = rooms

	if v.selected == id {
		v.selected = ""
		if len(rooms) > 0 {
			v.selected = rooms[0].ID
		}
	}
	if pending, ok := v.modal.RoomID(); ok && pending == id {
		v.modal = NoModal()
	}
	return v
}

func (v View) updateRoom(id string, fn func(Room) Room) View {
	i := v.roomIndex(id)
	if i < 0 {
		return v
	}
	rooms := append([]Room(nil), v.rooms...)
	rooms[i] = fn(rooms[i])
	v.rooms = rooms
	return v
}

// ── Line items ──────────────────────────────────────────────────────────

func newLineItem() services.LineItem {
	return services.LineItem{ID: uuid.NewString(), QtyPerTask: 1}
}

// AddLineItem appends a blank line item (quantity 1) to one subcategory of
// the selected room and returns its id. With no room selected nothing
// changes and the id is "".
func (v View) AddLineItem(category, subcategory string) (View, string) {
	if v.roomIndex(v.selected) < 0 {
		return v, ""
	}
	item := newLineItem()
	v = v.updateItems(category, subcategory, func(items []services.LineItem) []services.LineItem {
		out := make([]services.LineItem, 0, len(items)+1)
		out = append(out, items...)
		return append(out, item)
	})
	return v, item.ID
}

// UpdateLineItem patches one line item in the selected room. A new name
// that resolves to a nonzero reference value sets the hours from the
// table, overriding any hours in the same patch. Otherwise patched hours
// are taken as entered. Hours and quantity never go below 0.
func (v View) UpdateLineItem(category, subcategory, id string, patch LineItemPatch) View {
	if !v.hasLineItem(category, subcategory, id) {
		return v
	}
	return v.updateItems(category, subcategory, func(items []services.LineItem) []services.LineItem {
		out := append([]services.LineItem(nil), items...)
		for i, item := range out {
			if item.ID != id {
				continue
			}
			var looked float64
			if patch.Name != nil {
				item.Name = services.SanitizeText(*patch.Name)
				looked = v.tables.Hours(category, subcategory, item.Name)
			}
			switch {
			case looked != 0:
				item.HoursPerTask = looked
			case patch.HoursPerTask != nil:
				item.HoursPerTask = max(0, *patch.HoursPerTask)
			}
			if patch.QtyPerTask != nil {
				item.QtyPerTask = max(0, *patch.QtyPerTask)
			}
			out[i] = item
			break
		}
		return out
	})
}

// DeleteLineItem removes one line item from the selected room.
func (v View) DeleteLineItem(category, subcategory, id string) View {
	if !v.hasLineItem(category, subcategory, id) {
		return v
	}
	return v.updateItems(category, subcategory, func(items []services.LineItem) []services.LineItem {
		out := make([]services.LineItem, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				out = append(out, item)
			}
		}
		return out
	})
}

// FindLineItem locates a line item in the selected room by id.
func (v View) FindLineItem(id string) (category, subcategory string, item services.LineItem, ok bool) {
	room, found := v.SelectedRoom()
	if !found {
		return "", "", services.LineItem{}, false
	}
	for c, subs := range room.LineItems {
		for s, items := range subs {
			for _, li := range items {
				if li.ID == id {
					return c, s, li, true
				}
			}
		}
	}
	return "", "", services.LineItem{}, false
}

// hasLineItem reports whether the selected room lists id under category and
// subcategory.
func (v View) hasLineItem(category, subcategory, id string) bool {
	room, ok := v.SelectedRoom()
	if !ok {
		return false
	}
	for _, li := range room.LineItems[category][subcategory] {
		if li.ID == id {
			return true
		}
	}
	return false
}

// updateItems rewrites one subcategory list of the selected room, copying
// the maps on the way down so no other room or list is shared.
func (v View) updateItems(category, subcategory string, fn func([]services.LineItem) []services.LineItem) View {
	return v.updateRoom(v.selected, func(r Room) Room {
		byCategory := make(services.RoomLineItems, len(r.LineItems)+1)
		for c, subs := range r.LineItems {
			byCategory[c] = subs
		}
		bySub := make(map[string][]services.LineItem, len(byCategory[category])+1)
		for s, items := range byCategory[category] {
			bySub[s] = items
		}
		bySub[subcategory] = fn(bySub[subcategory])
		byCategory[category] = bySub
		r.LineItems = byCategory
		return r
	})
}

// ── Totals ──────────────────────────────────────────────────────────────

// Totals computes every category total for the selected room.
func (v View) Totals() services.RoomTotals {
	room, _ := v.SelectedRoom()
	return services.SummarizeRoom(room.LineItems, v.categories())
}

// RoomTotals computes every category total for one room.
func (v View) RoomTotals(id string) services.RoomTotals {
	room, _ := v.Room(id)
	return services.SummarizeRoom(room.LineItems, v.categories())
}

// CategoryHours computes one category total for the selected room.
func (v View) CategoryHours(category string) services.CategoryTotal {
	room, _ := v.SelectedRoom()
	return services.CategoryHours(room.LineItems, category)
}

func (v View) categories() []string {
	if v.tables == nil {
		return nil
	}
	return v.tables.Categories()
}

// ── Materials ───────────────────────────────────────────────────────────

func (v View) Wires() []services.Wire {
	return append([]services.Wire(nil), v.wires...)
}

func (v View) RackMaterials() []services.RackMaterial {
	return append([]services.RackMaterial(nil), v.materials...)
}

func (v View) MaterialsTotals() services.MaterialsTotals {
	return services.SummarizeMaterials(v.wires, v.materials)
}

func (v View) pricer() services.WirePricer {
	if v.tables == nil {
		return nil
	}
	return v.tables
}

func (v View) AddWire() View {
	wires := make([]services.Wire, 0, len(v.wires)+1)
	wires = append(wires, v.wires...)
	v.wires = append(wires, services.NewWire())
	return v
}

// UpdateWire edits one field of the wire at index and recomputes its cost.
// Out-of-range indexes are ignored.
func (v View) UpdateWire(index int, field services.WireField, raw string) View {
	if index < 0 || index >= len(v.wires) {
		return v
	}
	wires := append([]services.Wire(nil), v.wires...)
	wires[index] = services.UpdateWire(v.pricer(), wires[index], field, raw)
	v.wires = wires
	return v
}

// NormalizeWireLength replaces the typed length of one wire with its parsed
// value once editing of the field is done.
func (v View) NormalizeWireLength(index int) View {
	if index < 0 || index >= len(v.wires) {
		return v
	}
	wires := append([]services.Wire(nil), v.wires...)
	wires[index] = services.NormalizeWireLength(v.pricer(), wires[index])
	v.wires = wires
	return v
}

// RecalculateWires recomputes every wire cost.
func (v View) RecalculateWires() View {
	v.wires = services.RecalculateWires(v.pricer(), v.wires)
	return v
}

func (v View) AddRackMaterial() View {
	materials := make([]services.RackMaterial, 0, len(v.materials)+1)
	materials = append(materials, v.materials...)
	v.materials = append(materials, services.NewRackMaterial())
	return v
}

func (v View) UpdateRackMaterial(index int, field services.RackMaterialField, raw string) View {
	if index < 0 || index >= len(v.materials) {
		return v
	}
	materials := append([]services.RackMaterial(nil), v.materials...)
	materials[index] = services.UpdateRackMaterial(materials[index], field, raw)
	v.materials = materials
	return v
}

// ── Dialogs ─────────────────────────────────────────────────────────────

func (v View) Modal() Modal { return v.modal }

// OpenModal opens m, replacing any open dialog. A delete confirmation for
// a room that does not exist is ignored.
func (v View) OpenModal(m Modal) View {
	if id, ok := m.RoomID(); ok && v.roomIndex(id) < 0 {
		return v
	}
	v.modal = m
	return v
}

func (v View) CloseModal() View {
	v.modal = NoModal()
	return v
}
