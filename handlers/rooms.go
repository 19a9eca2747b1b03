package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/estimate"
	"avestimator/services"
)

// HandleRoomNew opens the add-room dialog.
func HandleRoomNew(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return updateView(app, store, "room_new", func(_ *core.RequestEvent, v estimate.View) estimate.View {
		return v.OpenModal(estimate.AddRoomModal())
	})
}

// HandleRoomAdd adds a room, selects it and closes the dialog.
func HandleRoomAdd(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "room_add", err)
		}
		name := services.SanitizeText(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Room name is required")
		}
		var roomID string
		v := store.Update(project, func(v estimate.View) estimate.View {
			v, roomID = v.AddRoom(name)
			return v
		})
		zap.L().Debug("room added", zap.String("project", project.ID), zap.String("room", roomID))
		return renderProjectView(e, v)
	}
}

// withRoom resolves {roomId} against the current view before applying fn.
func withRoom(app *pocketbase.PocketBase, store *estimate.Store, op string, fn func(e *core.RequestEvent, v estimate.View, roomID string) estimate.View) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, op, err)
		}
		roomID := e.Request.PathValue("roomId")
		if _, ok := store.View(project).Room(roomID); !ok {
			return ErrorToast(e, http.StatusNotFound, "Room not found")
		}
		v := store.Update(project, func(v estimate.View) estimate.View {
			return fn(e, v, roomID)
		})
		return renderProjectView(e, v)
	}
}

func HandleRoomSelect(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return withRoom(app, store, "room_select", func(_ *core.RequestEvent, v estimate.View, roomID string) estimate.View {
		return v.SelectRoom(roomID)
	})
}

func HandleRoomRename(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return withRoom(app, store, "room_rename", func(e *core.RequestEvent, v estimate.View, roomID string) estimate.View {
		return v.RenameRoom(roomID, e.Request.FormValue("name"))
	})
}

// HandleRoomCeiling sets the ceiling height from the feet and inches fields.
func HandleRoomCeiling(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return withRoom(app, store, "room_ceiling", func(e *core.RequestEvent, v estimate.View, roomID string) estimate.View {
		h := services.CeilingHeight{
			Feet:   services.ParseWholeNumber(e.Request.FormValue("feet")),
			Inches: services.ParseWholeNumber(e.Request.FormValue("inches")),
		}
		return v.SetCeilingHeight(roomID, h)
	})
}

// HandleRoomDeleteConfirm opens the delete confirmation for a room.
func HandleRoomDeleteConfirm(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return withRoom(app, store, "room_delete_confirm", func(_ *core.RequestEvent, v estimate.View, roomID string) estimate.View {
		return v.OpenModal(estimate.DeleteRoomModal(roomID))
	})
}

// HandleRoomDelete removes a room and closes the confirmation.
func HandleRoomDelete(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return withRoom(app, store, "room_delete", func(e *core.RequestEvent, v estimate.View, roomID string) estimate.View {
		SetToast(e, "success", "Room deleted")
		return v.DeleteRoom(roomID).CloseModal()
	})
}
