package templates

import "github.com/a-h/templ"

func ProjectViewPage(data ProjectViewData) templ.Component {
	return Layout(data.Info.Project, ProjectViewContent(data))
}

// ProjectViewContent is the whole estimate view. Every mutation re-renders it
// and HTMX swaps it over #project-view.
func ProjectViewContent(data ProjectViewData) templ.Component {
	return componentFunc(func(h *htmlWriter) {
		h.raw(`<div id="project-view" class="space-y-4" hx-target="#project-view" hx-swap="outerHTML">`)
		writeInfoPanel(h, data)
		writeRoomTabs(h, data)
		if data.Room != nil {
			writeRoomPanel(h, data, *data.Room)
		} else {
			h.raw(`<div class="card bg-base-100 p-6 text-center opacity-70">No rooms. Add a room to start estimating.</div>`)
		}
		writeMaterials(h, data)
		h.component(ProjectModal(data.Modal))
		h.raw(`</div>`)
	})
}

func writeHelpButton(h *htmlWriter, data ProjectViewData, kind string) {
	h.raw(`<button type="button" class="btn btn-circle btn-ghost btn-xs"`)
	h.attr("hx-get", data.HelpURL+kind)
	h.attr("aria-label", "About "+kind)
	h.raw(`>?</button>`)
}

func writeInfoPanel(h *htmlWriter, data ProjectViewData) {
	info := data.Info
	h.raw(`<div class="card bg-base-100 p-4">`)
	h.raw(`<div class="flex items-center justify-between gap-2"><div class="flex items-center gap-2"><a class="btn btn-ghost btn-sm" href="/projects">Back</a>`)
	h.raw(`<h1 class="text-2xl font-bold">`)
	h.text(info.Project)
	h.raw(`</h1>`)
	writeHelpButton(h, data, "project")
	h.raw(`</div><div class="flex items-center gap-2"><span class="badge badge-primary">`)
	h.text(data.ProjectHours)
	h.raw(` hrs</span><a class="btn btn-sm btn-outline"`)
	h.attr("href", data.ExportURL)
	h.raw(`>Export Excel</a></div></div>`)

	if info.Editing {
		h.raw(`<form class="flex flex-wrap gap-2 items-end mt-2"`)
		h.attr("hx-post", info.SaveURL)
		h.raw(`>`)
		writeFormField(h, "Project", "project", info.Project, "", "")
		writeFormField(h, "Client", "client", info.Client, "", "")
		writeFormField(h, "Created by", "createdBy", info.CreatedBy, "", "")
		h.raw(`<button type="submit" class="btn btn-primary btn-sm">Save</button>`)
		h.raw(`<button type="button" class="btn btn-ghost btn-sm"`)
		h.attr("hx-post", info.CancelURL)
		h.raw(`>Cancel</button></form>`)
	} else {
		h.raw(`<div class="flex flex-wrap gap-4 mt-2 text-sm"><span>ID: `)
		h.text(info.ID)
		h.raw(`</span><span>Client: `)
		h.text(info.Client)
		h.raw(`</span><span>Created by: `)
		h.text(info.CreatedBy)
		h.raw(`</span><button type="button" class="btn btn-xs"`)
		h.attr("hx-post", info.EditURL)
		h.raw(`>Edit</button></div>`)
	}
	h.raw(`</div>`)
}

func writeRoomTabs(h *htmlWriter, data ProjectViewData) {
	h.raw(`<div class="flex items-center gap-2"><div role="tablist" class="tabs tabs-box">`)
	for _, tab := range data.Rooms {
		class := "tab"
		if tab.Selected {
			class = "tab tab-active"
		}
		h.raw(`<button type="button" role="tab"`)
		h.attr("class", class)
		h.attr("hx-post", tab.SelectURL)
		h.raw(`>`)
		h.text(tab.Name)
		h.raw(` <span class="badge badge-sm ml-1">`)
		h.text(tab.TotalHours)
		h.raw(`</span></button>`)
	}
	h.raw(`</div><button type="button" class="btn btn-sm btn-primary"`)
	h.attr("hx-get", data.NewRoomURL)
	h.raw(`>Add Room</button>`)
	writeHelpButton(h, data, "room")
	h.raw(`</div>`)
}

func writeRoomPanel(h *htmlWriter, data ProjectViewData, room RoomPanel) {
	h.raw(`<div class="card bg-base-100 p-4 space-y-4">`)
	h.raw(`<div class="flex flex-wrap items-end gap-4">`)
	h.raw(`<label class="form-control"><span class="label-text">Room name</span><input class="input input-bordered" name="name" hx-trigger="change"`)
	h.attr("value", room.Name)
	h.attr("hx-post", room.RenameURL)
	h.raw(`></label>`)

	h.raw(`<form class="flex items-end gap-2" hx-trigger="change"`)
	h.attr("hx-post", room.CeilingURL)
	h.raw(`><label class="form-control"><span class="label-text">Ceiling ft</span><input type="number" min="0" class="input input-bordered w-20" name="feet"`)
	h.attrInt("value", room.Feet)
	h.raw(`></label><label class="form-control"><span class="label-text">in</span><input type="number" min="0" max="11" class="input input-bordered w-20" name="inches"`)
	h.attrInt("value", room.Inches)
	h.raw(`></label></form>`)

	h.raw(`<div class="flex-1 min-w-48"><div class="flex items-center gap-1"><span class="text-sm">Difficulty: `)
	h.text(room.DifficultyLabel)
	h.raw(`</span>`)
	writeHelpButton(h, data, "difficulty")
	h.raw(`</div><progress`)
	h.attr("class", "progress w-full "+room.MeterClass)
	h.attrInt("value", room.DifficultyPercent)
	h.raw(` max="100"></progress></div>`)

	h.raw(`<button type="button" class="btn btn-sm btn-error btn-outline"`)
	h.attr("hx-get", room.DeleteURL)
	h.raw(`>Delete Room</button></div>`)

	for _, cat := range room.Categories {
		writeCategory(h, data, cat)
	}
	h.raw(`<div class="text-right font-bold">Room total: `)
	h.text(room.TotalHours)
	h.raw(` hrs</div></div>`)
}

func writeCategory(h *htmlWriter, data ProjectViewData, cat CategoryPanel) {
	h.raw(`<div class="collapse collapse-arrow bg-base-200"><input type="checkbox" checked><div class="collapse-title flex justify-between"><span class="font-semibold">`)
	h.text(cat.Name)
	h.raw(`</span><span><span class="badge badge-primary">`)
	h.text(cat.Hours)
	h.raw(` hrs</span> <span class="text-xs opacity-60">raw `)
	h.text(cat.Raw)
	h.raw(`</span></span></div><div class="collapse-content space-y-3"><div class="flex items-center gap-1 text-xs opacity-70"><span>`)
	h.text(cat.Explanation)
	h.raw(`</span>`)
	writeHelpButton(h, data, "rounding")
	h.raw(`</div>`)
	for _, sub := range cat.Subcategories {
		writeSubcategory(h, sub)
	}
	h.raw(`</div></div>`)
}

func writeSubcategory(h *htmlWriter, sub SubcategoryPanel) {
	h.raw(`<div class="bg-base-100 rounded-box p-2"><div class="flex justify-between items-center"><h3 class="font-medium">`)
	h.text(sub.Name)
	h.raw(`</h3><button type="button" class="btn btn-xs"`)
	h.attr("hx-post", sub.AddURL)
	h.vals(map[string]string{"category": sub.Category, "subcategory": sub.Name})
	h.raw(`>Add Item</button></div>`)

	h.raw(`<datalist`)
	h.attr("id", sub.ListID)
	h.raw(`>`)
	for _, opt := range sub.Options {
		h.raw(`<option`)
		h.attr("value", opt.Label)
		h.raw(`>`)
		h.text(opt.Hours)
		h.raw(` hrs</option>`)
	}
	h.raw(`</datalist>`)

	if len(sub.Items) > 0 {
		h.raw(`<table class="table table-sm"><thead><tr><th>Task</th><th>Hours/Task</th><th>Qty</th><th>Subtotal</th><th></th></tr></thead><tbody>`)
		for _, item := range sub.Items {
			writeLineItem(h, sub.ListID, item)
		}
		h.raw(`</tbody></table>`)
	}
	h.raw(`<div class="text-right text-sm">Subtotal: `)
	h.text(sub.Subtotal)
	h.raw(`</div></div>`)
}

func writeLineItem(h *htmlWriter, listID string, item LineItemRow) {
	h.raw(`<tr`)
	h.attr("id", "item-"+item.ID)
	h.raw(`><td><input class="input input-sm input-bordered w-full" name="name" hx-trigger="change"`)
	h.attr("list", listID)
	h.attr("value", item.Name)
	h.attr("hx-patch", item.UpdateURL)
	h.raw(`></td><td><input type="number" step="0.01" min="0" class="input input-sm input-bordered w-24" name="hoursPerTask" hx-trigger="change"`)
	h.attr("value", item.HoursPerTask)
	h.attr("hx-patch", item.UpdateURL)
	h.raw(`></td><td><input type="number" step="1" min="0" class="input input-sm input-bordered w-20" name="qtyPerTask" hx-trigger="change"`)
	h.attr("value", item.QtyPerTask)
	h.attr("hx-patch", item.UpdateURL)
	h.raw(`></td><td>`)
	h.text(item.Subtotal)
	h.raw(`</td><td><button type="button" class="btn btn-ghost btn-xs text-error"`)
	h.attr("hx-delete", item.DeleteURL)
	h.raw(`>Remove</button></td></tr>`)
}

func writeMaterials(h *htmlWriter, data ProjectViewData) {
	m := data.Materials
	h.raw(`<div class="card bg-base-100 p-4 space-y-4"><div class="flex items-center gap-1"><h2 class="text-xl font-semibold">Materials</h2>`)
	writeHelpButton(h, data, "materials")
	h.raw(`</div>`)

	h.raw(`<div><div class="flex justify-between"><h3 class="font-medium">Cable Pulls</h3><button type="button" class="btn btn-xs"`)
	h.attr("hx-post", m.AddWireURL)
	h.raw(`>Add Wire</button></div>`)
	if len(m.Wires) > 0 {
		h.raw(`<table class="table table-sm"><thead><tr><th>Type</th><th>Length (ft)</th><th>Qty</th><th>Cost</th></tr></thead><tbody>`)
		for _, w := range m.Wires {
			h.raw(`<tr><td>`)
			writeTypeSelect(h, w.UpdateURL, w.Type, m.WireTypes)
			h.raw(`</td><td><input class="input input-sm input-bordered w-24" name="length" inputmode="decimal" hx-trigger="change"`)
			h.attr("value", w.Length)
			h.attr("hx-patch", w.UpdateURL)
			h.vals(map[string]string{"blur": "1"})
			h.raw(`></td><td><input type="number" min="1" class="input input-sm input-bordered w-20" name="quantity" hx-trigger="change"`)
			h.attrInt("value", w.Quantity)
			h.attr("hx-patch", w.UpdateURL)
			h.raw(`></td><td>`)
			h.text(w.Cost)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	}
	h.raw(`</div>`)

	h.raw(`<div><div class="flex justify-between"><h3 class="font-medium">Rack Materials</h3><button type="button" class="btn btn-xs"`)
	h.attr("hx-post", m.AddRackURL)
	h.raw(`>Add Material</button></div>`)
	if len(m.RackMaterials) > 0 {
		h.raw(`<table class="table table-sm"><thead><tr><th>Type</th><th>Qty</th><th>Cost</th></tr></thead><tbody>`)
		for _, r := range m.RackMaterials {
			h.raw(`<tr><td>`)
			writeTypeSelect(h, r.UpdateURL, r.Type, m.RackMaterialTypes)
			h.raw(`</td><td><input type="number" min="1" class="input input-sm input-bordered w-20" name="quantity" hx-trigger="change"`)
			h.attrInt("value", r.Quantity)
			h.attr("hx-patch", r.UpdateURL)
			h.raw(`></td><td>`)
			h.text(r.Cost)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	}
	h.raw(`</div>`)

	h.raw(`<div class="stats shadow"><div class="stat"><div class="stat-title">Wire</div><div class="stat-value text-lg">`)
	h.text(m.WireTotal)
	h.raw(`</div></div><div class="stat"><div class="stat-title">Rack</div><div class="stat-value text-lg">`)
	h.text(m.RackTotal)
	h.raw(`</div></div><div class="stat"><div class="stat-title">Materials Total</div><div class="stat-value text-lg">`)
	h.text(m.Total)
	h.raw(`</div></div></div></div>`)
}

func writeTypeSelect(h *htmlWriter, url, current string, options []string) {
	h.raw(`<select class="select select-sm select-bordered" name="type" hx-trigger="change"`)
	h.attr("hx-patch", url)
	h.raw(`><option value=""`)
	h.flag("selected", current == "")
	h.raw(`>Select type</option>`)
	for _, opt := range options {
		h.raw(`<option`)
		h.attr("value", opt)
		h.flag("selected", opt == current)
		h.raw(`>`)
		h.text(opt)
		h.raw(`</option>`)
	}
	h.raw(`</select>`)
}
