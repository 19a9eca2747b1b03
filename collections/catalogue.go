package collections

import (
	"errors"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"avestimator/services"
)

// ErrProjectNotFound is returned when no project has the requested id.
var ErrProjectNotFound = errors.New("project not found")

func projectFromRecord(r *core.Record) services.ProjectInfo {
	return services.ProjectInfo{
		ID:        r.GetString("project_id"),
		Project:   r.GetString("project"),
		Client:    r.GetString("client"),
		CreatedBy: r.GetString("created_by"),
	}
}

// ListProjects returns every project in the catalogue, newest (highest id)
// first.
func ListProjects(app *pocketbase.PocketBase) ([]services.ProjectInfo, error) {
	records, err := app.FindRecordsByFilter(ProjectsCollection, "project_id != ''", "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := make([]services.ProjectInfo, 0, len(records))
	for _, r := range records {
		projects = append(projects, projectFromRecord(r))
	}
	return services.SortProjects(projects, services.SortByID, true), nil
}

func findProjectRecord(app *pocketbase.PocketBase, id string) (*core.Record, error) {
	if id == "" {
		return nil, ErrProjectNotFound
	}
	records, err := app.FindRecordsByFilter(ProjectsCollection, "project_id = {:id}", "", 1, 0,
		map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("find project %s: %w", id, err)
	}
	if len(records) == 0 {
		return nil, ErrProjectNotFound
	}
	return records[0], nil
}

// FindProject looks a project up by its sequential id.
func FindProject(app *pocketbase.PocketBase, id string) (services.ProjectInfo, error) {
	r, err := findProjectRecord(app, id)
	if err != nil {
		return services.ProjectInfo{}, err
	}
	return projectFromRecord(r), nil
}

// CreateProject stores a new project with the next sequential id. Project
// and client are sanitised and both are required. An empty createdBy is
// recorded as services.DefaultCreatedBy.
func CreateProject(app *pocketbase.PocketBase, project, client, createdBy string) (services.ProjectInfo, error) {
	info := services.ProjectInfo{
		Project:   services.SanitizeText(project),
		Client:    services.SanitizeText(client),
		CreatedBy: services.SanitizeText(createdBy),
	}
	if info.Project == "" || info.Client == "" {
		return services.ProjectInfo{}, fmt.Errorf("create project: project and client are required")
	}
	if info.CreatedBy == "" {
		info.CreatedBy = services.DefaultCreatedBy
	}

	col, err := app.FindCollectionByNameOrId(ProjectsCollection)
	if err != nil {
		return services.ProjectInfo{}, fmt.Errorf("create project: %w", err)
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		existing, err := txApp.FindAllRecords(col)
		if err != nil {
			return err
		}
		ids := make([]services.ProjectInfo, 0, len(existing))
		for _, r := range existing {
			ids = append(ids, projectFromRecord(r))
		}
		info.ID = services.NextProjectID(ids)

		record := core.NewRecord(col)
		record.Set("project_id", info.ID)
		record.Set("project", info.Project)
		record.Set("client", info.Client)
		record.Set("created_by", info.CreatedBy)
		return txApp.Save(record)
	})
	if err != nil {
		return services.ProjectInfo{}, fmt.Errorf("create project: %w", err)
	}
	return info, nil
}

// UpdateProject writes the editable fields of info back to the catalogue.
// The id never changes.
func UpdateProject(app *pocketbase.PocketBase, info services.ProjectInfo) error {
	r, err := findProjectRecord(app, info.ID)
	if err != nil {
		return err
	}
	r.Set("project", info.Project)
	r.Set("client", info.Client)
	r.Set("created_by", info.CreatedBy)
	if err := app.Save(r); err != nil {
		return fmt.Errorf("update project %s: %w", info.ID, err)
	}
	return nil
}

// ListClients returns the distinct client names in the catalogue, in the
// order they are first seen.
func ListClients(app *pocketbase.PocketBase) ([]string, error) {
	projects, err := ListProjects(app)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var clients []string
	for i := len(projects) - 1; i >= 0; i-- {
		c := projects[i].Client
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		clients = append(clients, c)
	}
	return clients, nil
}
