package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/rtc"
	"github.com/mklimuk/rtc/adapter"
	"github.com/mklimuk/rtc/cmd/rtc/console"
	"github.com/mklimuk/rtc/i2c"
	"github.com/mklimuk/rtc/pcf85263"
)

var busFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Value:   "mcp2221",
		Usage:   "bus transport: mcp2221, linux or nanopi",
	},
	&cli.StringFlag{
		Name:  "dev",
		Usage: "i2c device for the linux adapter, e.g. /dev/i2c-1",
	},
	&cli.IntFlag{
		Name:  "bus",
		Value: 0,
		Usage: "i2c bus number for the nanopi adapter",
	},
	&cli.IntFlag{
		Name:  "address",
		Value: pcf85263.DefaultAddress,
		Usage: "device i2c address",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

// openBus builds the transport selected by the --adapter flag.
func openBus(c *cli.Context) (rtc.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		mcp2221 := adapter.NewMCP2221()
		err := mcp2221.Init()
		if err != nil {
			return nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return mcp2221, nil
	case "linux":
		bus, err := i2c.NewGenericBus(c.String("dev"))
		if err != nil {
			return nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return bus, nil
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		return i2c.NewGobotBus(npi, c.Int("bus")), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", c.String("adapter"))
	}
}

// openDevice builds the transport and attaches the clock to it.
func openDevice(c *cli.Context) (context.Context, *pcf85263.PCF85263, error) {
	ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
	bus, err := openBus(c)
	if err != nil {
		return ctx, nil, err
	}
	dev := pcf85263.New(pcf85263.WithAddress(byte(c.Int("address"))))
	if err := dev.Begin(ctx, bus); err != nil {
		return ctx, nil, err
	}
	return ctx, dev, nil
}
