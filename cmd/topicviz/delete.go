package main

import (
	"fmt"
	"os"

	"github.com/topiclab/topicviz"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return topicviz.Errorf(topicviz.EINVALID, "use --force to confirm deletion")
	}

	app, err := deps.Apps.FindAppBySlug(deps.Ctx, c.Slug)
	if err != nil {
		if topicviz.ErrorCode(err) == topicviz.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: app %q not found. Use 'topicviz list' to see available apps.\n", c.Slug)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Apps.DeleteApp(deps.Ctx, app.Slug); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}

	if c.Purge && app.OutputPath != "" {
		if err := os.RemoveAll(app.OutputPath); err != nil {
			return fmt.Errorf("removing bundle directory: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Removed bundle directory %s\n", app.OutputPath)
	}

	fmt.Fprintf(deps.Stdout, "Deleted app %q\n", app.Slug)
	return nil
}
