package main

import (
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/rtc/cmd/rtc/console"
)

var deviceCmd = cli.Command{
	Name:  "device",
	Usage: "device level operations",
	Subcommands: cli.Commands{
		&deviceConfigureCmd,
		&deviceRAMCmd,
	},
}

var deviceConfigureCmd = cli.Command{
	Name:  "configure",
	Usage: "write the default timestamp, pin IO and INTA configuration",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		if err := dev.Configure(ctx); err != nil {
			return console.Exit(1, "error configuring device: %s", console.Red(err))
		}
		console.Info("device configured")
		return nil
	},
}

var deviceRAMCmd = cli.Command{
	Name:      "ram",
	Usage:     "read the scratch RAM byte, or write it when a value is given",
	ArgsUsage: "[value]",
	Flags:     busFlags,
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		if c.NArg() > 0 {
			val, err := strconv.ParseUint(c.Args().First(), 0, 8)
			if err != nil {
				return console.Exit(1, "invalid value: %s", console.Red(c.Args().First()))
			}
			if err := dev.WriteRAM(ctx, byte(val)); err != nil {
				return console.Exit(1, "error writing RAM byte: %s", console.Red(err))
			}
			console.Infof("RAM byte set to %#02x", val)
			return nil
		}
		val, err := dev.ReadRAM(ctx)
		if err != nil {
			return console.Exit(1, "error reading RAM byte: %s", console.Red(err))
		}
		console.Printf("%s\n", console.White(strconv.FormatUint(uint64(val), 16)))
		return nil
	},
}
