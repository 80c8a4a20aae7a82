// Package mock provides function-field mock implementations of the
// topicviz service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/topiclab/topicviz"
)

var _ topicviz.AppService = (*AppService)(nil)

// AppService is a mock implementation of topicviz.AppService.
type AppService struct {
	CreateAppFn     func(ctx context.Context, app *topicviz.App) error
	FindAppBySlugFn func(ctx context.Context, slug string) (*topicviz.App, error)
	FindAppsFn      func(ctx context.Context, filter topicviz.AppFilter) ([]*topicviz.App, error)
	DeleteAppFn     func(ctx context.Context, slug string) error
}

func (s *AppService) CreateApp(ctx context.Context, app *topicviz.App) error {
	return s.CreateAppFn(ctx, app)
}

func (s *AppService) FindAppBySlug(ctx context.Context, slug string) (*topicviz.App, error) {
	return s.FindAppBySlugFn(ctx, slug)
}

func (s *AppService) FindApps(ctx context.Context, filter topicviz.AppFilter) ([]*topicviz.App, error) {
	return s.FindAppsFn(ctx, filter)
}

func (s *AppService) DeleteApp(ctx context.Context, slug string) error {
	return s.DeleteAppFn(ctx, slug)
}
