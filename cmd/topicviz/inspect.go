package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/topiclab/topicviz"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	src, err := topicviz.ParseSourceName(filepath.Base(abs))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}
	src.Path = abs

	fmt.Fprintf(deps.Stdout, "Source:      %s\n", src.Name)
	fmt.Fprintf(deps.Stdout, "Dataset:     %s\n", src.Title())
	fmt.Fprintf(deps.Stdout, "Method:      %s\n", src.Method.Upper())
	fmt.Fprintf(deps.Stdout, "Name topics: %d\n", src.TopicCount)

	artifacts, err := deps.Locator.Locate(deps.Ctx, src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}

	raw, err := os.ReadFile(artifacts.ScorePath)
	if err != nil {
		return fmt.Errorf("reading score document: %w", err)
	}
	scores, err := topicviz.ParseScoreDocument(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scores:      %s (%s)\n", filepath.Base(artifacts.ScorePath), shapeName(scores.Shape))
	fmt.Fprintf(deps.Stdout, "Data topics: %d\n", scores.TopicCount())
	if avg := scores.AverageCoherence(); avg != 0 {
		fmt.Fprintf(deps.Stdout, "Coherence:   %.4f\n", avg)
	}

	fmt.Fprintln(deps.Stdout, "Artifacts:")
	for _, a := range []struct {
		label string
		path  string
	}{
		{"diversity scores", artifacts.Diversity},
		{"top documents", artifacts.TopDocs},
		{"document distribution", artifacts.DocumentDist},
		{"temporal line chart", artifacts.TemporalLine},
		{"temporal area chart", artifacts.TemporalArea},
		{"yearly distribution", artifacts.YearlyDist},
		{"t-SNE visualization", artifacts.TSNE},
		{"UMAP visualization", artifacts.UMAP},
		{"temporal CSV", artifacts.TemporalCSV},
	} {
		if a.path == "" {
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %-22s %s\n", a.label, filepath.Base(a.path))
	}
	if n := len(artifacts.Wordclouds); n > 0 {
		fmt.Fprintf(deps.Stdout, "  %-22s %d files\n", "wordclouds", n)
	}

	if artifacts.Violin != "" {
		html, err := os.ReadFile(artifacts.Violin)
		if err != nil {
			return fmt.Errorf("reading violin plot: %w", err)
		}
		probe := deps.Plots.Detect(string(html))
		state := "static, will be skipped"
		if probe.Interactive {
			state = "interactive"
		}
		fmt.Fprintf(deps.Stdout, "  %-22s %s (%s)\n", "violin plot", filepath.Base(artifacts.Violin), state)
	}

	return nil
}

func shapeName(shape topicviz.ScoreShape) string {
	switch shape {
	case topicviz.ShapeRelevance:
		return "relevance"
	case topicviz.ShapeCoherence:
		return "coherence"
	default:
		return "unknown"
	}
}
