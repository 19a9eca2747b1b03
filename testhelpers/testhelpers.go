// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"avestimator/collections"
	"avestimator/estimate"
	"avestimator/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewTestStore returns an estimate store over the built-in reference tables.
func NewTestStore(t *testing.T) *estimate.Store {
	t.Helper()

	tables, err := services.DefaultReferenceTables()
	if err != nil {
		t.Fatalf("failed to load reference tables: %v", err)
	}
	return estimate.NewStore(tables)
}

// CreateTestProject adds a project to the catalogue and returns it.
func CreateTestProject(t *testing.T, app *pocketbase.PocketBase, project, client string) services.ProjectInfo {
	t.Helper()

	info, err := collections.CreateProject(app, project, client, "Tester")
	if err != nil {
		t.Fatalf("failed to save test project: %v", err)
	}

	return info
}

// CreateRawProjectRecord saves a project record directly, bypassing id
// assignment, and returns it.
func CreateRawProjectRecord(t *testing.T, app *pocketbase.PocketBase, projectID, project, client string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.ProjectsCollection)
	if err != nil {
		t.Fatalf("failed to find projects collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("project_id", projectID)
	record.Set("project", project)
	record.Set("client", client)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save project record: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
