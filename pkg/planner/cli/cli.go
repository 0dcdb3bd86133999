package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/polyroute/polyroute/pkg/dataset"
	"github.com/polyroute/polyroute/pkg/planner"
	"github.com/polyroute/polyroute/pkg/render"
	"github.com/polyroute/polyroute/pkg/solver"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner",
		Usage: "Computes optimal multi-modal routes",
		Subcommands: []*cli.Command{
			{
				Name:  "route",
				Usage: "compute the optimal route between two cities, visiting every known city",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "datasource",
						Value: "data/datasources/india.yaml",
						Usage: "datasource descriptor to load tables from",
					},
					&cli.StringFlag{
						Name:  "start",
						Value: "Delhi",
						Usage: "starting city",
					},
					&cli.StringFlag{
						Name:  "end",
						Value: "Kolkata",
						Usage: "destination city",
					},
					&cli.StringFlag{
						Name:  "map",
						Value: "output/route_map.html",
						Usage: "where to write the interactive route map",
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

					route, err := plan.Plan(context.Background(), c.String("start"), c.String("end"))
					if err != nil {
						return err
					}

					if err := render.WriteSummary(os.Stdout, route); err != nil {
						return err
					}

					mapPath := c.String("map")
					if err := os.MkdirAll(filepath.Dir(mapPath), 0755); err != nil {
						return err
					}

					mapFile, err := os.Create(mapPath)
					if err != nil {
						return err
					}
					defer mapFile.Close()

					if err := render.WriteMap(mapFile, route); err != nil {
						return err
					}

					log.Info().Str("path", mapPath).Msg("Route map written")

					return nil
				},
			},
		},
	}
}
