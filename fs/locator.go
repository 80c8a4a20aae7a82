// Package fs provides filesystem-based source discovery, artifact location,
// and atomic bundle storage.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/topiclab/topicviz"
)

// Ensure Locator implements topicviz.ArtifactLocator at compile time.
var _ topicviz.ArtifactLocator = (*Locator)(nil)

// Locator finds known artifact files inside a source folder by naming
// convention. Optional artifacts that are absent leave their field empty.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate inspects src.Path for the score document and optional artifacts.
// Returns ENODATA when no score document is present.
func (l *Locator) Locate(ctx context.Context, src *topicviz.Source) (*topicviz.Artifacts, error) {
	a := &topicviz.Artifacts{}

	// The coherence file wins when both score files exist.
	for _, name := range []string{
		src.Name + "_coherence_scores.json",
		src.Name + "_relevance_top_words.json",
	} {
		if p := existing(src.Path, name); p != "" {
			a.ScorePath = p
			break
		}
	}
	if a.ScorePath == "" {
		return nil, topicviz.Errorf(topicviz.ENODATA, "no score document found in %s", src.Path)
	}

	a.Diversity = existing(src.Path, src.Name+"_diversity_scores.json")
	a.TopDocs = existing(src.Path, src.Name+"_top_docs.json")
	a.DocumentDist = existing(src.Path, src.Name+"_document_dist.png")
	a.TemporalLine = existing(src.Path, src.Name+"_temporal_topic_dist_quarter_line.png")
	a.TemporalArea = existing(src.Path, src.Name+"_temporal_topic_dist_quarter_stacked_area.png")
	a.YearlyDist = existing(src.Path, src.Name+"_topic_distribution_by_year.png")
	a.TemporalCSV = existing(src.Path, src.Name+"_temporal_topic_dist_quarter.csv")

	// t-SNE images appear under a few historical names.
	for _, name := range []string{
		src.Name + "_tsne_visualization.png",
		src.Name + "_tsne.png",
		"tsne.png",
	} {
		if p := existing(src.Path, name); p != "" {
			a.TSNE = p
			break
		}
	}

	a.UMAP = firstGlob(src.Path, "*umap*visualization*.png", "*umap*.png")
	a.Violin = firstGlob(src.Path, "*violin*interactive*.html")

	// Wordclouds live in a subfolder, one "Topic NN.png" per topic.
	if matches, err := filepath.Glob(filepath.Join(src.Path, "wordclouds", "Topic *.png")); err == nil {
		sort.Strings(matches)
		a.Wordclouds = matches
	}

	return a, nil
}

// existing returns the joined path if it names a regular file, else "".
func existing(dir, name string) string {
	p := filepath.Join(dir, name)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p
	}
	return ""
}

// firstGlob returns the first match of the first pattern with any matches.
func firstGlob(dir string, patterns ...string) string {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0]
	}
	return ""
}
