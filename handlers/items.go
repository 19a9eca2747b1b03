package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/estimate"
	"avestimator/services"
)

// HandleItemAdd appends a blank line item to a subcategory of the selected
// room.
func HandleItemAdd(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "item_add", err)
		}
		category := e.Request.FormValue("category")
		subcategory := e.Request.FormValue("subcategory")
		if category == "" || subcategory == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing category or subcategory")
		}
		if _, ok := store.View(project).SelectedRoom(); !ok {
			return ErrorToast(e, http.StatusConflict, "Select a room first")
		}

		var itemID string
		v := store.Update(project, func(v estimate.View) estimate.View {
			v, itemID = v.AddLineItem(category, subcategory)
			return v
		})
		zap.L().Debug("line item added",
			zap.String("project", project.ID),
			zap.String("category", category),
			zap.String("subcategory", subcategory),
			zap.String("item", itemID))
		return renderProjectView(e, v)
	}
}

// lineItemPatch reads the fields present in the submitted form. Only the
// edited input is posted, so absent fields stay unchanged.
func lineItemPatch(e *core.RequestEvent) (estimate.LineItemPatch, error) {
	if err := e.Request.ParseForm(); err != nil {
		return estimate.LineItemPatch{}, err
	}
	var patch estimate.LineItemPatch
	form := e.Request.PostForm
	if vals, ok := form["name"]; ok && len(vals) > 0 {
		name := vals[0]
		patch.Name = &name
	}
	if vals, ok := form["hoursPerTask"]; ok && len(vals) > 0 {
		hours := services.ParseNumber(vals[0])
		patch.HoursPerTask = &hours
	}
	if vals, ok := form["qtyPerTask"]; ok && len(vals) > 0 {
		qty := services.ParseNumber(vals[0])
		patch.QtyPerTask = &qty
	}
	return patch, nil
}

// HandleItemUpdate edits one line item of the selected room.
func HandleItemUpdate(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "item_update", err)
		}
		itemID := e.Request.PathValue("itemId")
		patch, err := lineItemPatch(e)
		if err != nil {
			zap.L().Warn("item_update: invalid form", zap.String("item", itemID), zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		found := false
		v := store.Update(project, func(v estimate.View) estimate.View {
			category, subcategory, _, ok := v.FindLineItem(itemID)
			if !ok {
				return v
			}
			found = true
			return v.UpdateLineItem(category, subcategory, itemID, patch)
		})
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		return renderProjectView(e, v)
	}
}

// HandleItemDelete removes one line item of the selected room.
func HandleItemDelete(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "item_delete", err)
		}
		itemID := e.Request.PathValue("itemId")

		found := false
		v := store.Update(project, func(v estimate.View) estimate.View {
			category, subcategory, _, ok := v.FindLineItem(itemID)
			if !ok {
				return v
			}
			found = true
			return v.DeleteLineItem(category, subcategory, itemID)
		})
		if !found {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		return renderProjectView(e, v)
	}
}
