package samples

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "samples",
		Usage: "Generate illustrative sample datasets",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate a sample trains dataset",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output",
						Usage: "Output path for the sample dataset",
						Value: "data/trains.json",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed",
						Value: 42,
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Also write an indented copy for inspection",
					},
				},
				Action: func(c *cli.Context) error {
					generator := NewGenerator(c.Int64("seed"))
					document := generator.Generate()

					outputPath := c.String("output")
					if err := document.Write(outputPath); err != nil {
						return fmt.Errorf("write output: %w", err)
					}

					if c.Bool("pretty") {
						prettyPath := strings.TrimSuffix(outputPath, ".json") + "_pretty.json"
						if err := document.WritePretty(prettyPath); err != nil {
							return fmt.Errorf("write pretty output: %w", err)
						}
					}

					log.Info().
						Str("output", outputPath).
						Int("trains", document.Meta.TotalTrains).
						Msg("Generated sample dataset")

					return nil
				},
			},
		},
	}
}
