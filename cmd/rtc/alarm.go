package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/rtc/cmd/rtc/console"
	"github.com/mklimuk/rtc/datetime"
)

var alarmCmd = cli.Command{
	Name:  "alarm",
	Usage: "manage the alarm comparators",
	Subcommands: cli.Commands{
		&alarmReadCmd,
		&alarmSetCmd,
		&alarmEnableCmd,
		&alarmDisableCmd,
	},
}

var alarmSlotFlag = &cli.IntFlag{
	Name:  "slot",
	Value: 1,
	Usage: "alarm slot: 1 (date and time) or 2 (second, minute, weekday)",
}

var alarmReadCmd = cli.Command{
	Name:  "read",
	Flags: append([]cli.Flag{alarmSlotFlag}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		switch c.Int("slot") {
		case 1:
			alarm, err := dev.Alarm(ctx)
			if err != nil {
				return console.Exit(1, "error reading alarm: %s", console.Red(err))
			}
			// the year is a placeholder, the registers carry none
			console.PInfof(console.PictoBell, "alarm1 %s", console.White(alarm.Format("MM-DD hh:mm:ss")))
		case 2:
			second, minute, weekday, err := dev.Alarm2(ctx)
			if err != nil {
				return console.Exit(1, "error reading alarm: %s", console.Red(err))
			}
			console.PInfof(console.PictoBell, "alarm2 weekday %s at %s",
				console.White(weekday), console.White(fmt.Sprintf("%02dm%02ds", minute, second)))
		default:
			return console.Exit(1, "invalid alarm slot: %d", c.Int("slot"))
		}
		return nil
	},
}

var alarmSetCmd = cli.Command{
	Name:      "set",
	Usage:     "set alarm1 from an ISO-8601 time (the year is ignored)",
	ArgsUsage: "2020-06-25T07:30:00",
	Flags: append([]cli.Flag{
		alarmSlotFlag,
		&cli.UintFlag{Name: "second", Usage: "alarm2 second"},
		&cli.UintFlag{Name: "minute", Usage: "alarm2 minute"},
		&cli.UintFlag{Name: "weekday", Usage: "alarm2 weekday, 0 (Sunday) to 6 (Saturday)"},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		switch c.Int("slot") {
		case 1:
			if c.NArg() == 0 {
				return console.Exit(1, "missing alarm time argument")
			}
			dt := datetime.ParseISO8601(c.Args().First())
			if !dt.IsValid() {
				return console.Exit(1, "invalid time: %s", console.Red(c.Args().First()))
			}
			if err := dev.SetAlarm(ctx, dt); err != nil {
				return console.Exit(1, "error setting alarm: %s", console.Red(err))
			}
			console.PInfof(console.PictoBell, "alarm1 set to %s", console.White(dt.Format("MM-DD hh:mm:ss")))
		case 2:
			if err := dev.SetAlarm2(ctx, uint8(c.Uint("second")), uint8(c.Uint("minute")), uint8(c.Uint("weekday"))); err != nil {
				return console.Exit(1, "error setting alarm: %s", console.Red(err))
			}
			console.PInfof(console.PictoBell, "alarm2 set")
		default:
			return console.Exit(1, "invalid alarm slot: %d", c.Int("slot"))
		}
		return nil
	},
}

var alarmEnableCmd = cli.Command{
	Name:  "enable",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		enables, err := dev.EnableAlarm(ctx, true)
		if err != nil {
			return console.Exit(1, "error enabling alarm: %s", console.Red(err))
		}
		console.PInfof(console.PictoBell, "alarm enabled (register %#08b)", enables)
		return nil
	},
}

var alarmDisableCmd = cli.Command{
	Name:  "disable",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		enables, err := dev.EnableAlarm(ctx, false)
		if err != nil {
			return console.Exit(1, "error disabling alarm: %s", console.Red(err))
		}
		console.PInfof(console.PictoStop, "alarm disabled (register %#08b)", enables)
		return nil
	},
}
