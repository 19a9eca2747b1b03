package templates

import (
	"strconv"

	"github.com/a-h/templ"
)

func ProjectListPage(data ProjectListData) templ.Component {
	return Layout("Projects", ProjectListContent(data))
}

// ProjectListContent is swapped in place on search, sort and page changes.
func ProjectListContent(data ProjectListData) templ.Component {
	return componentFunc(func(h *htmlWriter) {
		h.raw(`<div id="project-list" class="space-y-4">`)
		h.raw(`<div class="flex items-center justify-between"><h1 class="text-2xl font-bold">Projects</h1>`)
		h.raw(`<span class="badge badge-ghost">`)
		h.text(strconv.Itoa(data.TotalCount))
		h.raw(` total</span></div>`)

		writeProjectForm(h, data)

		h.raw(`<input type="search" name="q" placeholder="Search projects" class="input input-bordered w-full"`)
		h.attr("value", data.Query)
		h.attr("hx-get", "/projects")
		h.attr("hx-trigger", "input changed delay:300ms, search")
		h.attr("hx-target", "#project-list")
		h.attr("hx-swap", "outerHTML")
		h.raw(`>`)

		h.raw(`<div class="overflow-x-auto bg-base-100 rounded-box"><table class="table"><thead><tr>`)
		for _, col := range data.Columns {
			h.raw(`<th><a class="link link-hover"`)
			h.attr("href", col.Href)
			h.attr("hx-get", col.Href)
			h.attr("hx-target", "#project-list")
			h.attr("hx-swap", "outerHTML")
			h.attr("hx-push-url", "true")
			h.raw(`>`)
			h.text(col.Label)
			if col.Active {
				h.raw(` `)
				h.text(col.Indicator)
			}
			h.raw(`</a></th>`)
		}
		h.raw(`</tr></thead><tbody>`)
		if len(data.Rows) == 0 {
			h.raw(`<tr><td colspan="4" class="text-center opacity-60">No projects found</td></tr>`)
		}
		for _, row := range data.Rows {
			h.raw(`<tr class="hover"><td>`)
			h.text(row.ID)
			h.raw(`</td><td><a class="link link-primary"`)
			h.attr("href", row.URL)
			h.raw(`>`)
			h.text(row.Project)
			h.raw(`</a></td><td>`)
			h.text(row.Client)
			h.raw(`</td><td>`)
			h.text(row.CreatedBy)
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table></div>`)

		writePagination(h, data)
		h.raw(`</div>`)
	})
}

func writeProjectForm(h *htmlWriter, data ProjectListData) {
	h.raw(`<form class="card bg-base-100 p-4 flex flex-row flex-wrap gap-2 items-end" hx-post="/projects" hx-target="#project-list" hx-swap="outerHTML">`)
	writeFormField(h, "Project", "project", data.Form.Project, "", data.Form.Errors["project"])
	writeFormField(h, "Client", "client", data.Form.Client, "client-options", data.Form.Errors["client"])
	h.raw(`<datalist id="client-options">`)
	for _, c := range data.Clients {
		h.raw(`<option`)
		h.attr("value", c)
		h.raw(`></option>`)
	}
	h.raw(`</datalist><button type="submit" class="btn btn-primary">New Project</button></form>`)
}

func writeFormField(h *htmlWriter, label, name, value, list, errMsg string) {
	h.raw(`<label class="form-control"><span class="label-text">`)
	h.text(label)
	h.raw(`</span><input class="input input-bordered"`)
	if errMsg != "" {
		h.raw(` aria-invalid="true"`)
	}
	h.attr("name", name)
	h.attr("value", value)
	if list != "" {
		h.attr("list", list)
	}
	h.raw(`>`)
	if errMsg != "" {
		h.raw(`<span class="text-error text-sm">`)
		h.text(errMsg)
		h.raw(`</span>`)
	}
	h.raw(`</label>`)
}

func writePagination(h *htmlWriter, data ProjectListData) {
	if data.TotalPages <= 1 {
		return
	}
	h.raw(`<div class="join">`)
	writePageLink(h, "«", data.PrevURL)
	h.raw(`<span class="join-item btn btn-disabled">Page `)
	h.text(strconv.Itoa(data.Page))
	h.raw(` of `)
	h.text(strconv.Itoa(data.TotalPages))
	h.raw(`</span>`)
	writePageLink(h, "»", data.NextURL)
	h.raw(`</div>`)
}

func writePageLink(h *htmlWriter, label, href string) {
	if href == "" {
		h.raw(`<span class="join-item btn btn-disabled">`)
		h.text(label)
		h.raw(`</span>`)
		return
	}
	h.raw(`<a class="join-item btn"`)
	h.attr("href", href)
	h.attr("hx-get", href)
	h.attr("hx-target", "#project-list")
	h.attr("hx-swap", "outerHTML")
	h.attr("hx-push-url", "true")
	h.raw(`>`)
	h.text(label)
	h.raw(`</a>`)
}
