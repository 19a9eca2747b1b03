package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"

	"avestimator/services"
)

// MigrateMissingProjectIDs gives a sequential project_id to every project
// record that has none, e.g. rows added through the PocketBase dashboard.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateMissingProjectIDs(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(ProjectsCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find projects collection: %w", err)
	}

	orphans, err := app.FindRecordsByFilter(col, "project_id = ''", "created", 0, 0)
	if err != nil {
		return fmt.Errorf("migrate: could not query projects without id: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	zap.L().Info("migrate: assigning ids to projects", zap.Int("count", len(orphans)))

	existing, err := ListProjects(app)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, r := range orphans {
		id := services.NextProjectID(existing)
		r.Set("project_id", id)
		if r.GetString("created_by") == "" {
			r.Set("created_by", services.DefaultCreatedBy)
		}
		if err := app.Save(r); err != nil {
			zap.L().Warn("migrate: failed to assign project id",
				zap.String("record", r.Id), zap.Error(err))
			continue
		}
		existing = append(existing, projectFromRecord(r))
		zap.L().Info("migrate: project id assigned",
			zap.String("record", r.Id), zap.String("project_id", id))
	}

	return nil
}
