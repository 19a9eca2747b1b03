package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// testRequest describes one handler call.
type testRequest struct {
	method string
	target string
	form   url.Values
	htmx   bool
	path   map[string]string
}

// serve runs handler against req and returns the recorded response.
func serve(t *testing.T, app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if tr.form != nil {
		req = httptest.NewRequest(tr.method, tr.target, strings.NewReader(tr.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(tr.method, tr.target, nil)
	}
	if tr.htmx {
		req.Header.Set("HX-Request", "true")
	}
	for k, v := range tr.path {
		req.SetPathValue(k, v)
	}

	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

// formValues builds form data from alternating keys and values.
func formValues(kv ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v
}
