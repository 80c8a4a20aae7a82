// Package site assembles visualization bundles from source folders.
package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/csv"
)

// Ensure Generator implements topicviz.BundleService.
var _ topicviz.BundleService = (*Generator)(nil)

// Generator implements topicviz.BundleService. It locates artifacts in a
// source folder, renders the static pages, and stages everything through a
// BundleStore so a bundle becomes visible only when complete.
type Generator struct {
	Locator  topicviz.ArtifactLocator
	Renderer topicviz.SiteRenderer
	Plots    topicviz.PlotDetector
	Sitemaps topicviz.SitemapWriter
	Apps     topicviz.AppService

	// NewStore opens a staging store for one bundle directory.
	NewStore func(baseDir, name string) topicviz.BundleStore

	// OutputDir is the parent directory bundles are written into.
	OutputDir string
}

// Generate builds the bundle for one source folder and records it in the
// app catalog. The folder-name topic count is replaced with the count
// resolved from the score document before any page is rendered.
func (g *Generator) Generate(ctx context.Context, src *topicviz.Source) (*topicviz.Result, error) {
	artifacts, err := g.Locator.Locate(ctx, src)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(artifacts.ScorePath)
	if err != nil {
		return nil, fmt.Errorf("reading score document: %w", err)
	}

	scores, err := topicviz.ParseScoreDocument(raw)
	if err != nil {
		return nil, err
	}
	count := scores.TopicCount()
	if count == 0 {
		return nil, topicviz.Errorf(topicviz.ENODATA, "could not determine topic count from %s", artifacts.ScorePath)
	}
	src.TopicCount = count

	store := &countingStore{inner: g.NewStore(g.OutputDir, src.Slug())}
	committed := false
	defer func() {
		if !committed {
			store.inner.Abort()
		}
	}()

	bundle := &topicviz.Bundle{
		Source:  src,
		Scores:  scores,
		HasUMAP: artifacts.UMAP != "",
	}

	// The violin page is only linked when the export is a working
	// self-contained interactive plot.
	var violinHTML []byte
	if artifacts.Violin != "" {
		violinHTML, err = os.ReadFile(artifacts.Violin)
		if err != nil {
			return nil, fmt.Errorf("reading violin plot: %w", err)
		}
		probe := g.Plots.Detect(string(violinHTML))
		bundle.HasViolin = probe.Interactive
		bundle.ViolinTitle = probe.Title
	}

	assets, err := g.Renderer.Assets(bundle)
	if err != nil {
		return nil, err
	}
	for _, relPath := range sortedKeys(assets) {
		if err := store.WriteFile(ctx, relPath, assets[relPath]); err != nil {
			return nil, err
		}
	}

	// The score document is copied byte for byte under a fixed name; the
	// client loads data/coherence_scores.json regardless of shape.
	if err := store.WriteFile(ctx, "data/coherence_scores.json", raw); err != nil {
		return nil, err
	}

	copies := []struct {
		relPath string
		srcPath string
	}{
		{"data/diversity_scores.json", artifacts.Diversity},
		{"data/top_docs.json", artifacts.TopDocs},
		{"images/document_dist.png", artifacts.DocumentDist},
		{"images/temporal_line.png", artifacts.TemporalLine},
		{"images/temporal_area.png", artifacts.TemporalArea},
		{"images/yearly_dist.png", artifacts.YearlyDist},
		{"images/tsne.png", artifacts.TSNE},
		{"images/umap.png", artifacts.UMAP},
	}
	for _, c := range copies {
		if c.srcPath == "" {
			continue
		}
		if err := store.CopyFile(ctx, c.relPath, c.srcPath); err != nil {
			return nil, err
		}
	}

	// Wordclouds keep their source names; the client derives them from
	// topic numbers.
	for _, wc := range artifacts.Wordclouds {
		relPath := "images/wordclouds/" + filepath.Base(wc)
		if err := store.CopyFile(ctx, relPath, wc); err != nil {
			return nil, err
		}
	}

	if bundle.HasViolin {
		if err := store.WriteFile(ctx, "violin-plot.html", violinHTML); err != nil {
			return nil, err
		}
	}

	index, err := g.Renderer.RenderIndex(bundle)
	if err != nil {
		return nil, err
	}
	if err := store.WriteFile(ctx, "index.html", index); err != nil {
		return nil, err
	}

	pages := []string{"index.html"}

	// The temporal graph page is skipped, not fatal, when the CSV is
	// missing or unreadable.
	if artifacts.TemporalCSV != "" {
		table, err := csv.LoadTable(artifacts.TemporalCSV)
		if err == nil {
			graph, err := g.Renderer.RenderTopicGraph(bundle, table)
			if err != nil {
				return nil, err
			}
			if err := store.WriteFile(ctx, "topic-graph.html", graph); err != nil {
				return nil, err
			}
			pages = append(pages, "topic-graph.html")
		}
	}
	if bundle.HasViolin {
		pages = append(pages, "violin-plot.html")
	}

	sitemap, err := g.Sitemaps.Build(pages)
	if err != nil {
		return nil, err
	}
	if err := store.WriteFile(ctx, "sitemap.xml", sitemap); err != nil {
		return nil, err
	}

	if err := store.inner.Commit(); err != nil {
		return nil, fmt.Errorf("committing bundle: %w", err)
	}
	committed = true

	outputDir := filepath.Join(g.OutputDir, src.Slug())
	app := &topicviz.App{
		Slug:       src.Slug(),
		Dataset:    src.Dataset,
		Method:     src.Method,
		TopicCount: src.TopicCount,
		SourcePath: src.Path,
		OutputPath: outputDir,
		ScoreHash:  ComputeHash(string(raw)),
	}
	if err := g.Apps.CreateApp(ctx, app); err != nil {
		return nil, fmt.Errorf("recording app: %w", err)
	}

	return &topicviz.Result{
		Source:    src,
		OutputDir: outputDir,
		Files:     store.files,
		Bytes:     store.bytes,
	}, nil
}

// countingStore tracks how many files and bytes pass through a BundleStore.
type countingStore struct {
	inner topicviz.BundleStore
	files int
	bytes int64
}

func (s *countingStore) WriteFile(ctx context.Context, relPath string, data []byte) error {
	if err := s.inner.WriteFile(ctx, relPath, data); err != nil {
		return err
	}
	s.files++
	s.bytes += int64(len(data))
	return nil
}

func (s *countingStore) CopyFile(ctx context.Context, relPath, srcPath string) error {
	if err := s.inner.CopyFile(ctx, relPath, srcPath); err != nil {
		return err
	}
	s.files++
	if info, err := os.Stat(srcPath); err == nil {
		s.bytes += info.Size()
	}
	return nil
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
