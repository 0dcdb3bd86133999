package api

import (
	"github.com/urfave/cli/v2"

	"github.com/polyroute/polyroute/pkg/dataset"
	"github.com/polyroute/polyroute/pkg/planner"
	"github.com/polyroute/polyroute/pkg/solver"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the route planning web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "datasource",
						Value: "data/datasources/india.yaml",
						Usage: "datasource descriptor to load tables from",
					},
				},
				Action: func(c *cli.Context) error {
					datasource, err := dataset.LoadDataSource(c.String("datasource"))
					if err != nil {
						return err
					}

					reg, roadEdges, railEdges, err := dataset.Load(datasource)
					if err != nil {
						return err
					}

					plan := planner.New(reg, roadEdges, railEdges, solver.NewLvlath())

					return SetupServer(c.String("listen"), plan)
				},
			},
		},
	}
}
