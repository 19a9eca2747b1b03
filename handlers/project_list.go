package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/services"
	"avestimator/templates"
)

// listQuery is the search, sort and page state of the project list.
type listQuery struct {
	Query string
	Sort  services.ProjectSortKey
	Desc  bool
	Page  int
}

// parseListQuery reads q, sort, dir and page. With no valid sort the list
// is newest first.
func parseListQuery(values url.Values) listQuery {
	lq := listQuery{Query: values.Get("q"), Sort: services.SortByID, Desc: true, Page: 1}
	if key, ok := services.ParseProjectSortKey(values.Get("sort")); ok {
		lq.Sort = key
		lq.Desc = values.Get("dir") == "desc"
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		lq.Page = p
	}
	return lq
}

func (lq listQuery) href(sort services.ProjectSortKey, desc bool, page int) string {
	v := url.Values{}
	if lq.Query != "" {
		v.Set("q", lq.Query)
	}
	v.Set("sort", string(sort))
	if desc {
		v.Set("dir", "desc")
	} else {
		v.Set("dir", "asc")
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return "/projects?" + v.Encode()
}

var listColumns = []struct {
	Label string
	Key   services.ProjectSortKey
}{
	{"ID", services.SortByID},
	{"Project", services.SortByProject},
	{"Client", services.SortByClient},
	{"Created By", services.SortByCreatedBy},
}

// buildProjectListData filters, sorts and pages the catalogue.
func buildProjectListData(app *pocketbase.PocketBase, lq listQuery, pageSize int) (templates.ProjectListData, error) {
	projects, err := collections.ListProjects(app)
	if err != nil {
		return templates.ProjectListData{}, err
	}
	clients, err := collections.ListClients(app)
	if err != nil {
		return templates.ProjectListData{}, err
	}

	filtered := services.SortProjects(services.FilterProjects(projects, lq.Query), lq.Sort, lq.Desc)
	rows, totalPages := services.Paginate(filtered, lq.Page, pageSize)

	data := templates.ProjectListData{
		Query:      lq.Query,
		Page:       lq.Page,
		TotalPages: totalPages,
		TotalCount: len(filtered),
		Clients:    clients,
	}
	for _, p := range rows {
		data.Rows = append(data.Rows, templates.ProjectRow{
			ID:        p.ID,
			Project:   p.Project,
			Client:    p.Client,
			CreatedBy: p.CreatedBy,
			URL:       projectURL(p.ID),
		})
	}
	for _, col := range listColumns {
		active := col.Key == lq.Sort
		// Clicking the active column flips its direction.
		desc := false
		if active {
			desc = !lq.Desc
		}
		indicator := "▲"
		if lq.Desc {
			indicator = "▼"
		}
		data.Columns = append(data.Columns, templates.SortColumn{
			Label:     col.Label,
			Href:      lq.href(col.Key, desc, 1),
			Indicator: indicator,
			Active:    active,
		})
	}
	if lq.Page > 1 {
		data.PrevURL = lq.href(lq.Sort, lq.Desc, lq.Page-1)
	}
	if lq.Page < totalPages {
		data.NextURL = lq.href(lq.Sort, lq.Desc, lq.Page+1)
	}
	return data, nil
}

func renderProjectList(e *core.RequestEvent, data templates.ProjectListData) error {
	var component templ.Component
	if isHTMX(e) {
		component = templates.ProjectListContent(data)
	} else {
		component = templates.ProjectListPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// HandleProjectList shows the searchable, sortable project table.
func HandleProjectList(app *pocketbase.PocketBase, pageSize int) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildProjectListData(app, parseListQuery(e.Request.URL.Query()), pageSize)
		if err != nil {
			zap.L().Error("project_list: could not load projects", zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, genericError)
		}
		return renderProjectList(e, data)
	}
}
