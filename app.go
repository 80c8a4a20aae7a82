package topicviz

import (
	"context"
	"time"
)

// App represents one generated visualization bundle recorded in the catalog.
type App struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Dataset     string    `json:"dataset"`
	Method      Method    `json:"method"`
	TopicCount  int       `json:"topicCount"`
	SourcePath  string    `json:"sourcePath"`
	OutputPath  string    `json:"outputPath"`
	ScoreHash   string    `json:"scoreHash"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Validate returns an error if the app contains invalid fields.
func (a *App) Validate() error {
	if a.Slug == "" {
		return Errorf(EINVALID, "app slug required")
	}
	if a.Dataset == "" {
		return Errorf(EINVALID, "app dataset required")
	}
	if a.Method != MethodNMTF && a.Method != MethodPNMF {
		return Errorf(EINVALID, "app method must be nmtf or pnmf")
	}
	if a.TopicCount <= 0 {
		return Errorf(EINVALID, "app topic count must be positive")
	}
	return nil
}

// AppService manages the catalog of generated apps.
type AppService interface {
	// CreateApp records a generated app. An existing record with the same
	// slug is replaced.
	CreateApp(ctx context.Context, app *App) error

	// FindAppBySlug retrieves a catalog record by slug.
	// Returns ENOTFOUND if no record exists.
	FindAppBySlug(ctx context.Context, slug string) (*App, error)

	// FindApps retrieves records matching the filter, newest first.
	FindApps(ctx context.Context, filter AppFilter) ([]*App, error)

	// DeleteApp removes a catalog record by slug.
	// Returns ENOTFOUND if no record exists.
	DeleteApp(ctx context.Context, slug string) error
}

// AppFilter represents a filter for FindApps.
type AppFilter struct {
	Dataset *string `json:"dataset"`
	Method  *Method `json:"method"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
