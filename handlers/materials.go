package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"avestimator/estimate"
	"avestimator/services"
)

// postedField returns the first of names present in the submitted form.
func postedField(e *core.RequestEvent, names ...string) (name, value string, ok bool) {
	if err := e.Request.ParseForm(); err != nil {
		return "", "", false
	}
	for _, n := range names {
		if vals, found := e.Request.PostForm[n]; found && len(vals) > 0 {
			return n, vals[0], true
		}
	}
	return "", "", false
}

// indexParam reads {index} and checks it against the list length.
func indexParam(e *core.RequestEvent, length int) (int, bool) {
	i, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func HandleWireAdd(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "wire_add", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.AddWire()
	})
}

// HandleWireUpdate edits the type, length or quantity of one wire. With
// blur=1 the typed length is normalised afterwards.
func HandleWireUpdate(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "wire_update", err)
		}
		index, ok := indexParam(e, len(store.View(project).Wires()))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Wire not found")
		}
		field, value, ok := postedField(e,
			string(services.WireFieldType), string(services.WireFieldLength), string(services.WireFieldQuantity))
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Missing wire field")
		}
		blur := e.Request.PostForm.Get("blur") == "1"

		v := store.Update(project, func(v estimate.View) estimate.View {
			v = v.UpdateWire(index, services.WireField(field), value)
			if blur && services.WireField(field) == services.WireFieldLength {
				v = v.NormalizeWireLength(index)
			}
			return v
		})
		return renderProjectView(e, v)
	}
}

func HandleRackMaterialAdd(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "rack_material_add", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.AddRackMaterial()
	})
}

// HandleRackMaterialUpdate edits the type or quantity of one rack material.
func HandleRackMaterialUpdate(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "rack_material_update", err)
		}
		index, ok := indexParam(e, len(store.View(project).RackMaterials()))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Rack material not found")
		}
		field, value, ok := postedField(e,
			string(services.RackMaterialFieldType), string(services.RackMaterialFieldQuantity))
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Missing rack material field")
		}

		v := store.Update(project, func(v estimate.View) estimate.View {
			return v.UpdateRackMaterial(index, services.RackMaterialField(field), value)
		})
		return renderProjectView(e, v)
	}
}
