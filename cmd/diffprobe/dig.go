package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/diffprobe/domain"
	"github.com/rios0rios0/diffprobe/infrastructure/chart"
	"github.com/rios0rios0/diffprobe/infrastructure/gitclient"
	"github.com/rios0rios0/diffprobe/infrastructure/miner"
)

// pipelineDeps bundles the collaborators the batch pipeline needs.
type pipelineDeps struct {
	dig.In

	Syncer    domain.Syncer
	Traverser domain.Traverser
	Differ    domain.DiffClient
	Renderer  domain.ChartRenderer
}

// buildContainer registers every infrastructure implementation behind its
// domain interface.
func buildContainer() *dig.Container {
	container := dig.New()

	must(container.Provide(gitclient.New))
	must(container.Provide(func(c *gitclient.Client) domain.Syncer { return c }))
	must(container.Provide(func(c *gitclient.Client) domain.DiffClient { return c }))
	must(container.Provide(func() domain.Traverser { return miner.New() }))
	must(container.Provide(func() domain.ChartRenderer { return chart.New() }))

	return container
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
