package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/pulsemap/pulse/pkg/samples"
	"github.com/pulsemap/pulse/pkg/timetable"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("PULSE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("PULSE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "pulse",
		Description: "Converts Network Rail timetable data into the compact dataset behind the Pulse map",

		Commands: []*cli.Command{
			timetable.RegisterCLI(),
			samples.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
