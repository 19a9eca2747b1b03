package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/estimate"
)

// HandleProjectInfoEdit opens the project info edit buffer.
func HandleProjectInfoEdit(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "project_info_edit", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.BeginEditProject()
	})
}

// HandleProjectInfoCancel discards the edit buffer.
func HandleProjectInfoCancel(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "project_info_cancel", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.CancelEditProject()
	})
}

// HandleProjectInfoSave commits the posted fields to the estimate and the
// project catalogue.
func HandleProjectInfoSave(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "project_info_save", err)
		}

		if !store.View(project).Editing() {
			return ErrorToast(e, http.StatusConflict, "Project info is not being edited")
		}

		rawProject, rawClient := e.Request.FormValue("project"), e.Request.FormValue("client")
		rawCreatedBy := e.Request.FormValue("createdBy")
		draft, _ := store.View(project).EditDraft(rawProject, rawClient, rawCreatedBy).Draft()
		if draft.Project == "" || draft.Client == "" {
			return ErrorToast(e, http.StatusBadRequest, "Project and client are required")
		}

		if err := collections.UpdateProject(app, draft); err != nil {
			zap.L().Error("project_info_save: could not update project",
				zap.String("project", project.ID), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, genericError)
		}

		v := store.Update(project, func(v estimate.View) estimate.View {
			return v.EditDraft(rawProject, rawClient, rawCreatedBy).SaveProject()
		})
		SetToast(e, "success", "Project updated")
		return renderProjectView(e, v)
	}
}
