package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"avestimator/estimate"
)

type help struct {
	Title string
	Body  string
}

var helpTexts = map[estimate.InfoKind]help{
	estimate.InfoProject: {
		Title: "Project Information",
		Body:  "This section displays the project information. You can edit the project details here.",
	},
	estimate.InfoRoom: {
		Title: "Room Information",
		Body:  "This section allows you to manage the labor items for the selected room.",
	},
	estimate.InfoDifficulty: {
		Title: "Installation Difficulty",
		Body:  "Difficulty follows the ceiling height. Up to 12 ft is Basic, up to 16 ft is Intermediate and anything higher is Advanced.",
	},
	estimate.InfoRounding: {
		Title: "Hour Rounding",
		Body:  "Install hours round up to the next multiple of 8. Project Management is 25% of the Install total, rounded up to a multiple of 2. Every other category rounds up to the next multiple of 2.",
	},
	estimate.InfoMaterials: {
		Title: "Materials",
		Body:  "Cable cost is length in feet divided by 1000, times the price per 1000 ft of the wire type, times quantity. Rack materials cost $10 each.",
	},
}

func helpText(kind estimate.InfoKind) help {
	return helpTexts[kind]
}

// HandleHelp opens the info modal named by {kind}.
func HandleHelp(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		kind := e.Request.PathValue("kind")
		if !estimate.ValidInfoKind(kind) {
			return ErrorToast(e, http.StatusNotFound, "Unknown help topic")
		}
		return updateView(app, store, "help", func(_ *core.RequestEvent, v estimate.View) estimate.View {
			return v.OpenModal(estimate.InfoModal(estimate.InfoKind(kind)))
		})(e)
	}
}

// HandleModalClose closes whatever dialog is open.
func HandleModalClose(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "modal_close", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.CloseModal()
	})
}
