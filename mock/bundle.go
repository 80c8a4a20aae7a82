package mock

import (
	"context"

	"github.com/topiclab/topicviz"
)

var _ topicviz.BundleService = (*BundleService)(nil)

// BundleService is a mock implementation of topicviz.BundleService.
type BundleService struct {
	GenerateFn func(ctx context.Context, src *topicviz.Source) (*topicviz.Result, error)
}

func (s *BundleService) Generate(ctx context.Context, src *topicviz.Source) (*topicviz.Result, error) {
	return s.GenerateFn(ctx, src)
}

var _ topicviz.BundleStore = (*BundleStore)(nil)

// BundleStore is a mock implementation of topicviz.BundleStore.
type BundleStore struct {
	WriteFileFn func(ctx context.Context, relPath string, data []byte) error
	CopyFileFn  func(ctx context.Context, relPath, srcPath string) error
	CommitFn    func() error
	AbortFn     func() error
}

func (s *BundleStore) WriteFile(ctx context.Context, relPath string, data []byte) error {
	return s.WriteFileFn(ctx, relPath, data)
}

func (s *BundleStore) CopyFile(ctx context.Context, relPath, srcPath string) error {
	return s.CopyFileFn(ctx, relPath, srcPath)
}

func (s *BundleStore) Commit() error {
	return s.CommitFn()
}

func (s *BundleStore) Abort() error {
	return s.AbortFn()
}
