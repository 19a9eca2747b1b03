package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type projectDef struct {
	id        string
	project   string
	client    string
	createdBy string
}

var seedProjects = []projectDef{
	{"1", "Website Redesign", "Acme Corp", "John Doe"},
	{"2", "Mobile App", "Beta Inc", "Jane Smith"},
	{"3", "Cloud Migration", "Gamma LLC", "Bob Wilson"},
	{"4", "Database Migration", "Delta Systems", "Alice Johnson"},
	{"5", "API Development", "Epsilon Tech", "Charlie Brown"},
}

// Seed inserts the sample projects into an empty catalogue. It does nothing
// when any project already exists.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if projects already exist ──────────────────
	col, err := app.FindCollectionByNameOrId(ProjectsCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find projects collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query projects: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	zap.L().Info("seed: projects collection is empty, inserting sample projects")

	return app.RunInTransaction(func(txApp core.App) error {
		for _, d := range seedProjects {
			r := core.NewRecord(col)
			r.Set("project_id", d.id)
			r.Set("project", d.project)
			r.Set("client", d.client)
			r.Set("created_by", d.createdBy)
			if err := txApp.Save(r); err != nil {
				return fmt.Errorf("seed: project %q: %w", d.project, err)
			}
		}
		return nil
	})
}
