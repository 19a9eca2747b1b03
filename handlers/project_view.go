package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/estimate"
	"avestimator/services"
	"avestimator/templates"
)

const genericError = "Something went wrong. Please try again."

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// currentProject returns the project loaded by ProjectMiddleware, or looks
// it up from the {id} path value when the middleware did not run.
func currentProject(app *pocketbase.PocketBase, e *core.RequestEvent) (services.ProjectInfo, error) {
	if p, ok := GetProject(e.Request); ok {
		return p, nil
	}
	return collections.FindProject(app, e.Request.PathValue("id"))
}

// projectError maps a project lookup failure to a response.
func projectError(e *core.RequestEvent, op string, err error) error {
	if errors.Is(err, collections.ErrProjectNotFound) {
		return ErrorToast(e, http.StatusNotFound, "Project not found")
	}
	zap.L().Error(op+": project lookup failed",
		zap.String("project", e.Request.PathValue("id")), zap.Error(err))
	return ErrorToast(e, http.StatusInternalServerError, genericError)
}

// renderProjectView writes the estimate view: the content fragment for HTMX
// requests, the full page otherwise.
func renderProjectView(e *core.RequestEvent, v estimate.View) error {
	data := buildProjectViewData(v)
	var component templ.Component
	if isHTMX(e) {
		component = templates.ProjectViewContent(data)
	} else {
		component = templates.ProjectViewPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// updateView applies fn to the project's estimate and renders the result.
func updateView(app *pocketbase.PocketBase, store *estimate.Store, op string, fn func(e *core.RequestEvent, v estimate.View) estimate.View) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, op, err)
		}
		v := store.Update(project, func(v estimate.View) estimate.View {
			return fn(e, v)
		})
		return renderProjectView(e, v)
	}
}

// HandleProjectView shows the estimate for one project.
func HandleProjectView(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "project_view", err)
		}
		return renderProjectView(e, store.View(project))
	}
}
