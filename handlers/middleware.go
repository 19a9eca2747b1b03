package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"avestimator/collections"
	"avestimator/services"
)

type contextKey string

const ProjectKey contextKey = "project"

// GetProject extracts the project loaded by ProjectMiddleware.
func GetProject(r *http.Request) (services.ProjectInfo, bool) {
	p, ok := r.Context().Value(ProjectKey).(services.ProjectInfo)
	return p, ok
}

// ProjectMiddleware loads the project named by the {id} path value and
// stores it in the request context. Unknown ids stop the chain with a 404.
func ProjectMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		project, err := collections.FindProject(app, e.Request.PathValue("id"))
		if err != nil {
			return projectError(e, "middleware", err)
		}
		ctx := context.WithValue(e.Request.Context(), ProjectKey, project)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// RequestLogMiddleware logs every request once it has been handled.
func RequestLogMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()
		err := e.Next()
		fields := []zap.Field{
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Int("status", e.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("htmx", isHTMX(e)),
		}
		if err != nil {
			zap.L().Warn("request failed", append(fields, zap.Error(err))...)
			return err
		}
		zap.L().Debug("request", fields...)
		return nil
	}
}
