package collections_test

import (
	"testing"

	"avestimator/collections"
	"avestimator/testhelpers"
)

func TestSeed_CreatesProjects(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	projects, err := collections.ListProjects(app)
	if err != nil {
		t.Fatalf("ListProjects() error: %v", err)
	}
	if len(projects) != 5 {
		t.Fatalf("expected 5 projects, got %d", len(projects))
	}
	// Newest first
	if projects[0].ID != "5" || projects[0].Project != "API Development" {
		t.Errorf("first project = %+v, want id 5 API Development", projects[0])
	}
	if projects[4].ID != "1" || projects[4].Client != "Acme Corp" || projects[4].CreatedBy != "John Doe" {
		t.Errorf("last project = %+v, want id 1 Acme Corp John Doe", projects[4])
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	projects, _ := collections.ListProjects(app)
	if len(projects) != 5 {
		t.Errorf("expected 5 projects after idempotent seed, got %d", len(projects))
	}
}

func TestSeed_SkipsNonEmptyCatalogue(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProject(t, app, "Existing", "Client")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	projects, _ := collections.ListProjects(app)
	if len(projects) != 1 {
		t.Errorf("expected seed to be skipped, got %d projects", len(projects))
	}
}
