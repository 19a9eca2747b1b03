package handlers

import (
	"net/http"
	"testing"

	"avestimator/collections"
	"avestimator/services"
	"avestimator/testhelpers"
)

func TestHandleProjectSave_ValidData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	rec := serve(t, app, HandleProjectSave(app, 10), testRequest{
		method: http.MethodPost, target: "/projects", htmx: true,
		form: formValues("project", "Lecture Capture", "client", "Zeta University"),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	created, err := collections.FindProject(app, "6")
	if err != nil {
		t.Fatalf("expected project 6 to exist: %v", err)
	}
	if created.Project != "Lecture Capture" || created.Client != "Zeta University" {
		t.Errorf("unexpected project %+v", created)
	}
	if created.CreatedBy != services.DefaultCreatedBy {
		t.Errorf("expected createdBy %q, got %q", services.DefaultCreatedBy, created.CreatedBy)
	}
	if toast := decodeToast(t, rec.Header().Get("HX-Trigger")); toast["message"] != "Project created" {
		t.Errorf("expected Project created toast, got %q", toast["message"])
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `id="project-list"`, "Lecture Capture", "6 total")
}

func TestHandleProjectSave_NonHTMXRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := serve(t, app, HandleProjectSave(app, 10), testRequest{
		method: http.MethodPost, target: "/projects",
		form: formValues("project", "Lecture Capture", "client", "Zeta University"),
	})

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects" {
		t.Errorf("expected redirect to /projects, got %q", loc)
	}
}

func TestHandleProjectSave_MissingFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rec := serve(t, app, HandleProjectSave(app, 10), testRequest{
		method: http.MethodPost, target: "/projects", htmx: true,
		form: formValues("project", "<b></b>", "client", ""),
	})

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Project name is required", "Client is required")
	projects, err := collections.ListProjects(app)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected no project to be created, got %d", len(projects))
	}
}
