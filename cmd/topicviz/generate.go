package main

import (
	"fmt"
	"path/filepath"

	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/site"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	abs, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}

	// A path whose base name matches the naming convention is a single
	// source folder; anything else is scanned as a root of source folders.
	if src, err := topicviz.ParseSourceName(filepath.Base(abs)); err == nil {
		src.Path = abs
		result, err := deps.Bundles.Generate(deps.Ctx, src)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
			return err
		}
		printResult(deps, result)
		return nil
	}

	sources, err := deps.Scanner.Scan(deps.Ctx, abs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stdout, "No source folders found in %s\n", abs)
		return nil
	}

	// One bad folder never stops the batch.
	generated := 0
	for _, src := range sources {
		result, err := deps.Bundles.Generate(deps.Ctx, src)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", src.Name, err)
			continue
		}
		printResult(deps, result)
		generated++
	}

	fmt.Fprintf(deps.Stdout, "Generated %d of %d bundles\n", generated, len(sources))
	return nil
}

func printResult(deps *Dependencies, result *topicviz.Result) {
	fmt.Fprintf(deps.Stdout, "Generated %s (%d topics, %d files, %s)\n",
		result.OutputDir, result.Source.TopicCount, result.Files, site.FormatBytes(result.Bytes))
}
