package collections

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// ProjectsCollection holds the project catalogue. Estimates themselves are
// kept in memory by the estimate store.
const ProjectsCollection = "projects"

// Setup programmatically creates/ensures the projects collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, ProjectsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "project_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "project", Required: true})
		c.Fields.Add(&core.TextField{Name: "client", Required: true})
		c.Fields.Add(&core.TextField{Name: "created_by", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_projects_project_id", true, "project_id", "project_id != ''")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		zap.L().Debug("collection already exists, skipping creation", zap.String("collection", name))
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		zap.L().Fatal("failed to create collection", zap.String("collection", name), zap.Error(err))
	}

	zap.L().Info("created collection", zap.String("collection", name), zap.String("id", collection.Id))
	return collection
}
