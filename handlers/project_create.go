package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/services"
	"avestimator/templates"
)

// HandleProjectSave creates a project from the list page form. It gets the
// next sequential id and is shown first in the refreshed list.
func HandleProjectSave(app *pocketbase.PocketBase, pageSize int) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := templates.ProjectForm{
			Project: services.SanitizeText(e.Request.FormValue("project")),
			Client:  services.SanitizeText(e.Request.FormValue("client")),
			Errors:  make(map[string]string),
		}
		if form.Project == "" {
			form.Errors["project"] = "Project name is required"
		}
		if form.Client == "" {
			form.Errors["client"] = "Client is required"
		}

		lq := parseListQuery(nil)
		if len(form.Errors) > 0 {
			SetToast(e, "warning", "Please fix the errors below")
			data, err := buildProjectListData(app, lq, pageSize)
			if err != nil {
				zap.L().Error("project_save: could not load projects", zap.Error(err))
				return ErrorToast(e, http.StatusInternalServerError, genericError)
			}
			data.Form = form
			return renderProjectList(e, data)
		}

		info, err := collections.CreateProject(app, form.Project, form.Client, services.DefaultCreatedBy)
		if err != nil {
			zap.L().Error("project_save: could not create project", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, genericError)
		}
		zap.L().Info("project created", zap.String("project", info.ID), zap.String("name", info.Project))
		SetToast(e, "success", "Project created")

		if !isHTMX(e) {
			return e.Redirect(http.StatusSeeOther, "/projects")
		}
		data, err := buildProjectListData(app, lq, pageSize)
		if err != nil {
			zap.L().Error("project_save: could not load projects", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, genericError)
		}
		return renderProjectList(e, data)
	}
}
