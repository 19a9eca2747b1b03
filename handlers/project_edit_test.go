package handlers

import (
	"net/http"
	"testing"

	"avestimator/collections"
	"avestimator/estimate"
	"avestimator/testhelpers"
)

func TestHandleProjectInfo_EditAndSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewTestStore(t)
	p := testhelpers.CreateTestProject(t, app, "Boardroom Refresh", "Acme Corp")
	path := map[string]string{"id": p.ID}

	rec := serve(t, app, HandleProjectInfoEdit(app, store), testRequest{
		method: http.MethodPost, target: "/projects/" + p.ID + "/info/edit", htmx: true, path: path,
	})
	if !store.View(p).Editing() {
		t.Fatal("expected edit buffer to be open")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="createdBy"`)

	rec = serve(t, app, HandleProjectInfoSave(app, store), testRequest{
		method: http.MethodPost, target: "/projects/" + p.ID + "/info", htmx: true,
		form: formValues("project", "Boardroom Phase 2", "client", "Acme Holdings", "createdBy", "Dana"),
		path: path,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	v := store.View(p)
	if v.Editing() {
		t.Error("expected edit buffer to close")
	}
	if got := v.Project(); got.Project != "Boardroom Phase 2" || got.Client != "Acme Holdings" || got.CreatedBy != "Dana" {
		t.Errorf("unexpected committed project %+v", got)
	}

	stored, err := collections.FindProject(app, p.ID)
	if err != nil {
		t.Fatalf("FindProject: %v", err)
	}
	if stored.Project != "Boardroom Phase 2" || stored.Client != "Acme Holdings" {
		t.Errorf("expected catalogue to be updated, got %+v", stored)
	}
	if stored.ID != p.ID {
		t.Errorf("expected id to stay %q, got %q", p.ID, stored.ID)
	}
}

func TestHandleProjectInfo_Cancel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewTestStore(t)
	p := testhelpers.CreateTestProject(t, app, "Boardroom Refresh", "Acme Corp")
	path := map[string]string{"id": p.ID}

	serve(t, app, HandleProjectInfoEdit(app, store), testRequest{
		method: http.MethodPost, target: "/", htmx: true, path: path,
	})
	rec := serve(t, app, HandleProjectInfoCancel(app, store), testRequest{
		method: http.MethodPost, target: "/", htmx: true, path: path,
	})

	v := store.View(p)
	if v.Editing() {
		t.Error("expected edit buffer to be discarded")
	}
	if v.Project() != p {
		t.Errorf("expected project unchanged, got %+v", v.Project())
	}
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), `name="createdBy"`)
}

func TestHandleProjectInfoSave_Errors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewTestStore(t)
	p := testhelpers.CreateTestProject(t, app, "Boardroom Refresh", "Acme Corp")
	path := map[string]string{"id": p.ID}

	rec := serve(t, app, HandleProjectInfoSave(app, store), testRequest{
		method: http.MethodPost, target: "/", htmx: true,
		form: formValues("project", "New", "client", "Client"), path: path,
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 without an open edit, got %d", rec.Code)
	}

	serve(t, app, HandleProjectInfoEdit(app, store), testRequest{
		method: http.MethodPost, target: "/", htmx: true, path: path,
	})
	rec = serve(t, app, HandleProjectInfoSave(app, store), testRequest{
		method: http.MethodPost, target: "/", htmx: true,
		form: formValues("project", "New name", "client", "  "), path: path,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for blank client, got %d", rec.Code)
	}
	if !store.View(p).Editing() {
		t.Error("expected edit buffer to stay open after a rejected save")
	}
	if store.View(p).Project().Project != "Boardroom Refresh" {
		t.Error("expected committed project to be unchanged")
	}
}

func TestHandleProjectInfoSave_CatalogueMatchesView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := testhelpers.NewTestStore(t)
	p := testhelpers.CreateTestProject(t, app, "Boardroom Refresh", "Acme Corp")
	path := map[string]string{"id": p.ID}
	store.Update(p, func(v estimate.View) estimate.View { return v.BeginEditProject() })

	rec := serve(t, app, HandleProjectInfoSave(app, store), testRequest{
		method: http.MethodPost, target: "/projects/" + p.ID + "/info", htmx: true,
		form: formValues("project", "<i>R&amp;D</i> Lab", "client", "&lt;b&gt;Acme", "createdBy", "Dana"),
		path: path,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	stored, err := collections.FindProject(app, p.ID)
	if err != nil {
		t.Fatalf("FindProject: %v", err)
	}
	got := store.View(p).Project()
	if stored.Project != got.Project || stored.Client != got.Client {
		t.Errorf("catalogue %+v does not match view %+v", stored, got)
	}
	if got.Project != "R&amp;D Lab" || got.Client != "&lt;b&gt;Acme" {
		t.Errorf("expected typed entities kept literally, got %+v", got)
	}
}
