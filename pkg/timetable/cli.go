package timetable

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/pulsemap/pulse/pkg/cif"
	"github.com/pulsemap/pulse/pkg/config"
	"github.com/pulsemap/pulse/pkg/corpus"
	"github.com/pulsemap/pulse/pkg/operators"
	"github.com/pulsemap/pulse/pkg/source"
	"github.com/pulsemap/pulse/pkg/stations"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "timetable",
		Usage: "Convert Network Rail timetable data into the compact trains dataset",
		Subcommands: []*cli.Command{
			{
				Name:  "process",
				Usage: "Process a SCHEDULE feed into trains.json",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "schedule",
						Usage:    "Path or URL of the SCHEDULE JSON(.gz) feed",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "corpus",
						Usage:    "Path or URL of the CORPUS reference JSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "stations",
						Usage:    "Path or URL of the station locations CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "operators",
						Usage: "Optional YAML override of the passenger operator allow-list",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Optional pipeline configuration YAML",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Output path for the trains dataset",
						Value: "data/trains.json",
					},
				},
				Action: func(c *cli.Context) error {
					startTime := time.Now()

					pipeline, err := config.Load(c.String("config"))
					if err != nil {
						return fmt.Errorf("load config: %w", err)
					}

					allowList, err := operators.Load(c.String("operators"))
					if err != nil {
						return fmt.Errorf("load operator allow-list: %w", err)
					}

					resolver, err := loadResolver(c.String("corpus"), c.String("stations"))
					if err != nil {
						return err
					}

					scheduleReader, err := source.Open(c.String("schedule"))
					if err != nil {
						return fmt.Errorf("open schedule feed: %w", err)
					}
					defer scheduleReader.Close()

					schedules, err := cif.ParseSchedules(scheduleReader)
					if err != nil {
						return fmt.Errorf("parse schedule feed: %w", err)
					}

					consolidator := Consolidator{
						Resolver:  resolver,
						AllowList: allowList,
						Pipeline:  pipeline,
					}

					document := consolidator.Run(schedules)

					outputPath := c.String("output")
					if err := document.Write(outputPath); err != nil {
						return fmt.Errorf("write output: %w", err)
					}

					log.Info().
						Str("output", outputPath).
						Int("trains", document.Meta.TotalTrains).
						Str("duration", time.Since(startTime).String()).
						Msg("Wrote trains dataset")

					return nil
				},
			},
		},
	}
}

func loadResolver(corpusSource string, stationsSource string) (*stations.Resolver, error) {
	corpusReader, err := source.Open(corpusSource)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer corpusReader.Close()

	var corpusData corpus.Corpus
	if err := corpusData.ParseFile(corpusReader); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	stationsReader, err := source.Open(stationsSource)
	if err != nil {
		return nil, fmt.Errorf("open stations: %w", err)
	}
	defer stationsReader.Close()

	stationMap, err := stations.ParseFile(stationsReader)
	if err != nil {
		return nil, fmt.Errorf("parse stations: %w", err)
	}

	return stations.NewResolver(corpusData.CRSMap(), stationMap), nil
}
