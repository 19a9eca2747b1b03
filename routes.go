package main

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"avestimator/handlers"
)

func registerRoutes(se *core.ServeEvent, app *pocketbase.PocketBase, rt *runtime) {
	store := rt.store
	pageSize := rt.cfg.Projects.PageSize

	se.Router.BindFunc(handlers.RequestLogMiddleware())

	// ── Project catalogue ────────────────────────────────────
	se.Router.GET("/projects", handlers.HandleProjectList(app, pageSize))
	se.Router.POST("/projects", handlers.HandleProjectSave(app, pageSize))

	// ── Project estimate (project loaded by middleware) ──────
	p := se.Router.Group("/projects/{id}")
	p.BindFunc(handlers.ProjectMiddleware(app))

	p.GET("", handlers.HandleProjectView(app, store))

	p.POST("/info/edit", handlers.HandleProjectInfoEdit(app, store))
	p.POST("/info", handlers.HandleProjectInfoSave(app, store))
	p.POST("/info/cancel", handlers.HandleProjectInfoCancel(app, store))

	// Rooms ("new" must be registered before {roomId})
	p.GET("/rooms/new", handlers.HandleRoomNew(app, store))
	p.POST("/rooms", handlers.HandleRoomAdd(app, store))
	p.POST("/rooms/{roomId}/select", handlers.HandleRoomSelect(app, store))
	p.POST("/rooms/{roomId}/rename", handlers.HandleRoomRename(app, store))
	p.POST("/rooms/{roomId}/ceiling", handlers.HandleRoomCeiling(app, store))
	p.GET("/rooms/{roomId}/delete", handlers.HandleRoomDeleteConfirm(app, store))
	p.DELETE("/rooms/{roomId}", handlers.HandleRoomDelete(app, store))

	// Dialogs
	p.GET("/help/{kind}", handlers.HandleHelp(app, store))
	p.POST("/modal/close", handlers.HandleModalClose(app, store))

	// Line items of the selected room
	p.POST("/items", handlers.HandleItemAdd(app, store))
	p.PATCH("/items/{itemId}", handlers.HandleItemUpdate(app, store))
	p.DELETE("/items/{itemId}", handlers.HandleItemDelete(app, store))

	// Materials
	p.POST("/wires", handlers.HandleWireAdd(app, store))
	p.PATCH("/wires/{index}", handlers.HandleWireUpdate(app, store))
	p.POST("/rack-materials", handlers.HandleRackMaterialAdd(app, store))
	p.PATCH("/rack-materials/{index}", handlers.HandleRackMaterialUpdate(app, store))

	p.GET("/export/excel", handlers.HandleEstimateExportExcel(app, store))

	// Redirect home to projects list
	se.Router.GET("/{$}", func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "/projects")
	})
}
