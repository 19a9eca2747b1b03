package templates

import "github.com/a-h/templ"

// ProjectModal renders the open dialog, or nothing when none is open.
func ProjectModal(m ModalData) templ.Component {
	return componentFunc(func(h *htmlWriter) {
		if m.Kind == ModalKindNone {
			return
		}
		h.raw(`<dialog id="project-modal" class="modal modal-open"><div class="modal-box">`)
		switch m.Kind {
		case ModalKindAddRoom:
			h.raw(`<h3 class="text-lg font-bold">Add Room</h3><form class="space-y-2 mt-2"`)
			h.attr("hx-post", m.AddRoomURL)
			h.raw(`><input class="input input-bordered w-full" name="name" placeholder="Room name" autofocus>`)
			h.raw(`<div class="modal-action"><button type="button" class="btn"`)
			h.attr("hx-post", m.CloseURL)
			h.raw(`>Cancel</button><button type="submit" class="btn btn-primary">Add</button></div></form>`)
		case ModalKindDeleteRoom:
			h.raw(`<h3 class="text-lg font-bold">Delete Room</h3><p class="py-2">Delete `)
			h.text(m.RoomName)
			h.raw(` and all of its line items?</p><div class="modal-action"><button type="button" class="btn"`)
			h.attr("hx-post", m.CloseURL)
			h.raw(`>Cancel</button><button type="button" class="btn btn-error"`)
			h.attr("hx-delete", m.DeleteURL)
			h.raw(`>Delete</button></div>`)
		default:
			h.raw(`<h3 class="text-lg font-bold">`)
			h.text(m.Title)
			h.raw(`</h3><p class="py-2">`)
			h.text(m.Body)
			h.raw(`</p><div class="modal-action"><button type="button" class="btn"`)
			h.attr("hx-post", m.CloseURL)
			h.raw(`>Close</button></div>`)
		}
		h.raw(`</div></dialog>`)
	})
}
