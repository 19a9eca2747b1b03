package collections_test

import (
	"errors"
	"testing"

	"avestimator/collections"
	"avestimator/services"
	"avestimator/testhelpers"
)

func TestCreateProject_SequentialIDs(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	first, err := collections.CreateProject(app, "Board Room", "Globex", "")
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	second, err := collections.CreateProject(app, "Lobby", "Globex", "Lee")
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}

	if first.ID != "1" || second.ID != "2" {
		t.Errorf("ids = %q, %q; want 1, 2", first.ID, second.ID)
	}
	if first.CreatedBy != services.DefaultCreatedBy {
		t.Errorf("CreatedBy = %q, want %q", first.CreatedBy, services.DefaultCreatedBy)
	}
	if second.CreatedBy != "Lee" {
		t.Errorf("CreatedBy = %q, want Lee", second.CreatedBy)
	}
}

func TestCreateProject_AfterSeed(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	info, err := collections.CreateProject(app, "Auditorium", "Initech", "")
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	if info.ID != "6" {
		t.Errorf("id = %q, want 6", info.ID)
	}

	projects, _ := collections.ListProjects(app)
	if projects[0].ID != "6" {
		t.Errorf("newest project listed first = %q, want 6", projects[0].ID)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name    string
		project string
		client  string
	}{
		{"missing project", "", "Globex"},
		{"missing client", "Lobby", ""},
		{"markup only", "<b></b>", "Globex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := collections.CreateProject(app, tt.project, tt.client, ""); err == nil {
				t.Error("CreateProject() expected error, got nil")
			}
		})
	}

	projects, _ := collections.ListProjects(app)
	if len(projects) != 0 {
		t.Errorf("invalid projects were saved: %d", len(projects))
	}
}

func TestCreateProject_SanitisesText(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	info, err := collections.CreateProject(app, "  <i>Board</i>  Room ", "Globex", "")
	if err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	if info.Project != "Board Room" {
		t.Errorf("Project = %q, want Board Room", info.Project)
	}
}

func TestFindProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	created := testhelpers.CreateTestProject(t, app, "Board Room", "Globex")

	got, err := collections.FindProject(app, created.ID)
	if err != nil {
		t.Fatalf("FindProject() error: %v", err)
	}
	if got != created {
		t.Errorf("FindProject() = %+v, want %+v", got, created)
	}

	for _, id := range []string{"", "99"} {
		if _, err := collections.FindProject(app, id); !errors.Is(err, collections.ErrProjectNotFound) {
			t.Errorf("FindProject(%q) error = %v, want ErrProjectNotFound", id, err)
		}
	}
}

func TestUpdateProject(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	created := testhelpers.CreateTestProject(t, app, "Board Room", "Globex")

	created.Project = "Executive Board Room"
	created.CreatedBy = "Sam"
	if err := collections.UpdateProject(app, created); err != nil {
		t.Fatalf("UpdateProject() error: %v", err)
	}

	got, _ := collections.FindProject(app, created.ID)
	if got != created {
		t.Errorf("after update = %+v, want %+v", got, created)
	}

	missing := services.ProjectInfo{ID: "42", Project: "Nope", Client: "Nope"}
	if err := collections.UpdateProject(app, missing); !errors.Is(err, collections.ErrProjectNotFound) {
		t.Errorf("UpdateProject(missing) error = %v, want ErrProjectNotFound", err)
	}
}

func TestListClients(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "A", "Globex")
	testhelpers.CreateTestProject(t, app, "B", "Initech")
	testhelpers.CreateTestProject(t, app, "C", "Globex")

	clients, err := collections.ListClients(app)
	if err != nil {
		t.Fatalf("ListClients() error: %v", err)
	}
	if len(clients) != 2 || clients[0] != "Globex" || clients[1] != "Initech" {
		t.Errorf("ListClients() = %v, want [Globex Initech]", clients)
	}
}
