package topicviz

import "context"

// Artifacts lists the files located in a source folder. ScorePath is the
// only required entry; any other field is empty when the artifact is absent.
type Artifacts struct {
	ScorePath    string // coherence or relevance JSON; coherence wins when both exist
	Diversity    string
	TopDocs      string
	DocumentDist string
	TemporalLine string
	TemporalArea string
	YearlyDist   string
	TSNE         string
	UMAP         string
	Violin       string
	TemporalCSV  string
	Wordclouds   []string
}

// ArtifactLocator finds known artifact files in a source folder.
// Missing optional artifacts are expected-absent; a missing score document
// is ENODATA.
type ArtifactLocator interface {
	Locate(ctx context.Context, src *Source) (*Artifacts, error)
}

// SourceScanner discovers source folders under a root directory whose names
// match the naming convention. Non-matching entries are skipped.
type SourceScanner interface {
	Scan(ctx context.Context, root string) ([]*Source, error)
}

// BundleStore persists a bundle with atomic semantics: files are staged,
// Commit makes the bundle visible, Abort discards staged files.
type BundleStore interface {
	WriteFile(ctx context.Context, relPath string, data []byte) error
	CopyFile(ctx context.Context, relPath, srcPath string) error
	Commit() error
	Abort() error
}

// Bundle carries everything the renderer needs for one output app.
type Bundle struct {
	Source      *Source
	Scores      *ScoreDocument
	HasViolin   bool
	HasUMAP     bool
	ViolinTitle string
}

// SiteRenderer renders the static pages and assets of a bundle.
type SiteRenderer interface {
	// RenderIndex renders the main index.html page.
	RenderIndex(b *Bundle) ([]byte, error)

	// RenderTopicGraph renders the temporal-graph page with the table
	// embedded as JSON.
	RenderTopicGraph(b *Bundle, table *TemporalTable) ([]byte, error)

	// Assets returns the static css/js files of the bundle, keyed by
	// output-relative path.
	Assets(b *Bundle) (map[string][]byte, error)
}

// PlotProbe is the result of inspecting a candidate interactive plot file.
type PlotProbe struct {
	Interactive bool
	Title       string
}

// PlotDetector inspects HTML and reports whether it is a self-contained
// interactive plot.
type PlotDetector interface {
	Detect(html string) PlotProbe
}

// SitemapWriter builds a sitemap XML document for a set of page locations.
type SitemapWriter interface {
	Build(pages []string) ([]byte, error)
}

// Result summarizes one generated bundle.
type Result struct {
	Source    *Source
	OutputDir string
	Files     int
	Bytes     int64
}

// BundleService generates a visualization bundle from one source folder.
// Failures carry EFORMAT or ENODATA codes and abort only that folder.
type BundleService interface {
	Generate(ctx context.Context, src *Source) (*Result, error)
}
