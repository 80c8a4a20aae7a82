package main

import (
	"fmt"

	"github.com/topiclab/topicviz"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := topicviz.AppFilter{}
	if c.Dataset != "" {
		filter.Dataset = &c.Dataset
	}
	if c.Method != "" {
		method := topicviz.Method(c.Method)
		if method != topicviz.MethodNMTF && method != topicviz.MethodPNMF {
			fmt.Fprintf(deps.Stderr, "error: method must be nmtf or pnmf\n")
			return topicviz.Errorf(topicviz.EINVALID, "method must be nmtf or pnmf")
		}
		filter.Method = &method
	}

	apps, err := deps.Apps.FindApps(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicviz.ErrorMessage(err))
		return err
	}

	if len(apps) == 0 {
		fmt.Fprintln(deps.Stdout, "No apps found. Use 'topicviz generate' to create one.")
		return nil
	}

	for _, a := range apps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d topics  %s  %s\n",
			a.Slug, a.Method.Upper(), a.TopicCount,
			a.GeneratedAt.Format("2006-01-02"), a.OutputPath)
	}

	return nil
}
