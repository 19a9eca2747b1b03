package services

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultCreatedBy is recorded on projects created from the dashboard.
const DefaultCreatedBy = "User"

// ProjectInfo identifies a project and who it is for.
type ProjectInfo struct {
	ID        string `json:"id"`
	Project   string `json:"project"`
	Client    string `json:"client"`
	CreatedBy string `json:"createdBy"`
}

type ProjectSortKey string

const (
	SortByID        ProjectSortKey = "id"
	SortByProject   ProjectSortKey = "project"
	SortByClient    ProjectSortKey = "client"
	SortByCreatedBy ProjectSortKey = "createdBy"
)

// ParseProjectSortKey returns the key named by s and whether it is valid.
func ParseProjectSortKey(s string) (ProjectSortKey, bool) {
	switch k := ProjectSortKey(s); k {
	case SortByID, SortByProject, SortByClient, SortByCreatedBy:
		return k, true
	}
	return "", false
}

func (p ProjectInfo) field(k ProjectSortKey) string {
	switch k {
	case SortByProject:
		return p.Project
	case SortByClient:
		return p.Client
	case SortByCreatedBy:
		return p.CreatedBy
	default:
		return p.ID
	}
}

// NextProjectID returns the next sequential id: one past the highest
// numeric id in use, starting at "1".
func NextProjectID(existing []ProjectInfo) string {
	highest := 0
	for _, p := range existing {
		if n, err := strconv.Atoi(p.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// FilterProjects keeps projects where any field contains query,
// case-insensitively. An empty query keeps everything.
func FilterProjects(projects []ProjectInfo, query string) []ProjectInfo {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		if q == "" ||
			strings.Contains(strings.ToLower(p.ID), q) ||
			strings.Contains(strings.ToLower(p.Project), q) ||
			strings.Contains(strings.ToLower(p.Client), q) ||
			strings.Contains(strings.ToLower(p.CreatedBy), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortProjects returns a sorted copy. Ids compare numerically, every other
// column compares as text. Equal rows keep their input order.
func SortProjects(projects []ProjectInfo, key ProjectSortKey, descending bool) []ProjectInfo {
	out := append([]ProjectInfo(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if descending {
			a, b = b, a
		}
		if key == SortByID {
			ai, aerr := strconv.Atoi(a.ID)
			bi, berr := strconv.Atoi(b.ID)
			if aerr == nil && berr == nil {
				return ai < bi
			}
		}
		return a.field(key) < b.field(key)
	})
	return out
}

// Paginate returns page (1-based) of items and the total page count. Pages
// past the end are empty; page numbers below 1 are treated as 1.
func Paginate(projects []ProjectInfo, page, pageSize int) ([]ProjectInfo, int) {
	if pageSize < 1 {
		pageSize = 10
	}
	totalPages := (len(projects) + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		return []ProjectInfo{}, totalPages
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(projects))
	return projects[start:end], totalPages
}
