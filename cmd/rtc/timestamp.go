package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/rtc/cmd/rtc/console"
	"github.com/mklimuk/rtc/datetime"
)

var timestampCmd = cli.Command{
	Name:  "timestamp",
	Usage: "read and seed the timestamp registers",
	Subcommands: cli.Commands{
		&timestampReadCmd,
		&timestampSetCmd,
	},
}

var timestampReadCmd = cli.Command{
	Name: "read",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "slot",
			Value: "1",
			Usage: "timestamp slot: 1, 2 or batsw (battery switch-over)",
		},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		var ts datetime.DateTime
		switch c.String("slot") {
		case "1":
			ts, err = dev.Timestamp1(ctx)
		case "2":
			ts, err = dev.Timestamp2(ctx)
		case "batsw":
			ts, err = dev.BatterySwitchTimestamp(ctx)
		default:
			return console.Exit(1, "invalid timestamp slot: %s", c.String("slot"))
		}
		if err != nil {
			return console.Exit(1, "error reading timestamp: %s", console.Red(err))
		}
		picto := console.PictoPin
		if c.String("slot") == "batsw" {
			picto = console.PictoBattery
		}
		console.PInfof(picto, "timestamp %s: %s", c.String("slot"), console.White(ts))
		return nil
	},
}

var timestampSetCmd = cli.Command{
	Name:      "set",
	Usage:     "seed a timestamp register from an ISO-8601 time",
	ArgsUsage: "2020-06-25T15:29:37",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "slot",
			Value: "1",
			Usage: "timestamp slot: 1 or 2",
		},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return console.Exit(1, "missing timestamp argument")
		}
		dt := datetime.ParseISO8601(c.Args().First())
		if !dt.IsValid() {
			return console.Exit(1, "invalid time: %s", console.Red(c.Args().First()))
		}
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		switch c.String("slot") {
		case "1":
			err = dev.SetTimestamp1(ctx, dt)
		case "2":
			err = dev.SetTimestamp2(ctx, dt)
		default:
			return console.Exit(1, "invalid timestamp slot: %s", c.String("slot"))
		}
		if err != nil {
			return console.Exit(1, "error setting timestamp: %s", console.Red(err))
		}
		console.PInfof(console.PictoPin, "timestamp %s set to %s", c.String("slot"), console.White(dt))
		return nil
	},
}
