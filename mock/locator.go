package mock

import (
	"context"

	"github.com/topiclab/topicviz"
)

var _ topicviz.ArtifactLocator = (*ArtifactLocator)(nil)

// ArtifactLocator is a mock implementation of topicviz.ArtifactLocator.
type ArtifactLocator struct {
	LocateFn func(ctx context.Context, src *topicviz.Source) (*topicviz.Artifacts, error)
}

func (l *ArtifactLocator) Locate(ctx context.Context, src *topicviz.Source) (*topicviz.Artifacts, error) {
	return l.LocateFn(ctx, src)
}

var _ topicviz.SourceScanner = (*SourceScanner)(nil)

// SourceScanner is a mock implementation of topicviz.SourceScanner.
type SourceScanner struct {
	ScanFn func(ctx context.Context, root string) ([]*topicviz.Source, error)
}

func (s *SourceScanner) Scan(ctx context.Context, root string) ([]*topicviz.Source, error) {
	return s.ScanFn(ctx, root)
}
