package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/estimate"
	"avestimator/services"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// exportFilename builds "<project>_estimate_<date>.xlsx" with anything
// outside [A-Za-z0-9._-] replaced by underscores.
func exportFilename(project string, now time.Time) string {
	name := strings.Trim(unsafeFilenameChars.ReplaceAllString(project, "_"), "_")
	if name == "" {
		name = "project"
	}
	return fmt.Sprintf("%s_estimate_%s.xlsx", name, now.Format("2006-01-02"))
}

// HandleEstimateExportExcel downloads the project's estimate as a workbook.
func HandleEstimateExportExcel(app *pocketbase.PocketBase, store *estimate.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := currentProject(app, e)
		if err != nil {
			return projectError(e, "export_excel", err)
		}

		now := time.Now()
		data := estimate.BuildExport(store.View(project), now.Format("02 Jan 2006"))
		content, err := services.GenerateExcel(data)
		if err != nil {
			zap.L().Error("export_excel: could not generate workbook",
				zap.String("project", project.ID), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(project.Project, now)))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(content)
		return err
	}
}
