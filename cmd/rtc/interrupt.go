package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/rtc/cmd/rtc/console"
	"github.com/mklimuk/rtc/pcf85263"
)

var interruptCmd = cli.Command{
	Name:  "interrupt",
	Usage: "manage the INTA/INTB pin routing",
	Subcommands: cli.Commands{
		&interruptShowCmd,
		&interruptSetCmd,
	},
}

var interruptPinFlag = &cli.StringFlag{
	Name:  "pin",
	Value: "A",
	Usage: "interrupt pin: A or B",
}

var interruptShowCmd = cli.Command{
	Name:  "show",
	Flags: append([]cli.Flag{interruptPinFlag}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		var cfg pcf85263.INTConfig
		switch c.String("pin") {
		case "A", "a":
			cfg, err = dev.INTA(ctx)
		case "B", "b":
			cfg, err = dev.INTB(ctx)
		default:
			return console.Exit(1, "invalid interrupt pin: %s", c.String("pin"))
		}
		if err != nil {
			return console.Exit(1, "error reading interrupt configuration: %s", console.Red(err))
		}
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(cfg); err != nil {
			return console.Exit(1, "encoding error: %s", console.Red(err))
		}
		return nil
	},
}

var interruptSetCmd = cli.Command{
	Name:  "set",
	Usage: "apply a yaml interrupt configuration to a pin",
	Flags: append([]cli.Flag{
		interruptPinFlag,
		&cli.StringFlag{
			Name:     "config",
			Required: true,
			Usage:    "yaml file with the interrupt configuration",
		},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		raw, err := os.ReadFile(c.String("config"))
		if err != nil {
			return console.Exit(1, "could not read configuration: %s", console.Red(err))
		}
		var cfg pcf85263.INTConfig
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return console.Exit(1, "could not parse configuration: %s", console.Red(err))
		}
		ctx, dev, err := openDevice(c)
		if err != nil {
			return console.Exit(1, "device error: %s", console.Red(err))
		}
		switch c.String("pin") {
		case "A", "a":
			err = dev.SetINTA(ctx, cfg)
		case "B", "b":
			err = dev.SetINTB(ctx, cfg)
		default:
			return console.Exit(1, "invalid interrupt pin: %s", c.String("pin"))
		}
		if err != nil {
			return console.Exit(1, "error writing interrupt configuration: %s", console.Red(err))
		}
		console.Infof("interrupt pin %s configured", c.String("pin"))
		return nil
	},
}
