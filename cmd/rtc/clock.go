package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/rtc/cmd/rtc/console"
	"github.com/mklimuk/rtc/datetime"
)

var clockCmd = cli.Command{
	Name:  "clock",
	Usage: "read and set the main clock",
	Subcommands: cli.Commands{
		&clockReadCmd,
		&clockSetCmd,
		&clockStartCmd,
		&clockStopCmd,
	},
}

var clockReadCmd = cli.Command{
	Name:  "read",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		lost, err := dev.LostTime(ctx)
		if err != nil {
			return console.Exit(1, "error reading clock state: %s", console.Red(err))
		}
		if lost {
			console.Warn("oscillator was stopped; clock integrity is not guaranteed")
		}
		now, err := dev.Now(ctx)
		if err != nil {
			return console.Exit(1, "error reading clock: %s", console.Red(err))
		}
		console.PInfof(console.PictoClock, "%s (%s)", console.White(now), now.Format("DDD"))
		return nil
	},
}

var clockSetCmd = cli.Command{
	Name:      "set",
	Usage:     "set the clock to the given ISO-8601 time, or to host time when omitted",
	ArgsUsage: "[2020-06-25T15:29:37]",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "start",
			Usage: "start the clock after setting it",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "skip confirmation",
		},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		var dt datetime.DateTime
		if c.NArg() > 0 {
			dt = datetime.ParseISO8601(c.Args().First())
			if !dt.IsValid() {
				return console.Exit(1, "invalid time: %s", console.Red(c.Args().First()))
			}
		} else {
			host := time.Now()
			dt = datetime.New(uint16(host.Year()), uint8(host.Month()), uint8(host.Day()),
				uint8(host.Hour()), uint8(host.Minute()), uint8(host.Second()))
		}
		if !c.Bool("yes") {
			answer, err := console.YesOrNo("set the clock to " + dt.String() + "?")
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			if answer != console.Yes {
				console.Info("aborted")
				return nil
			}
		}
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		if err := dev.Adjust(ctx, dt); err != nil {
			return console.Exit(1, "error setting clock: %s", console.Red(err))
		}
		console.PInfof(console.PictoClock, "clock set to %s", console.White(dt))
		if c.Bool("start") {
			if err := dev.Start(ctx); err != nil {
				return console.Exit(1, "error starting clock: %s", console.Red(err))
			}
			console.Info("clock started")
		}
		return nil
	},
}

var clockStartCmd = cli.Command{
	Name:  "start",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		if err := dev.Start(ctx); err != nil {
			return console.Exit(1, "error starting clock: %s", console.Red(err))
		}
		console.Info("clock started")
		return nil
	},
}

var clockStopCmd = cli.Command{
	Name:  "stop",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		if err := dev.Stop(ctx); err != nil {
			return console.Exit(1, "error stopping clock: %s", console.Red(err))
		}
		console.PInfof(console.PictoStop, "clock stopped")
		return nil
	},
}
