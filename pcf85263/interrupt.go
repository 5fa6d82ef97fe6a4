package pcf85263

import (
	"context"
	"fmt"
)

const (
	intPulseMode        byte = 1 << 7
	intPeriodic         byte = 1 << 6
	intOffsetCorrection byte = 1 << 5
	intAlarm1           byte = 1 << 4
	intAlarm2           byte = 1 << 3
	intTimestamp        byte = 1 << 2
	intBatterySwitch    byte = 1 << 1
	intWatchdog         byte = 1 << 0
)

// INTConfig selects the interrupt sources routed to an interrupt pin and
// whether the pin generates a pulse or a level signal.
type INTConfig struct {
	PulseMode        bool `yaml:"pulse_mode"`
	Periodic         bool `yaml:"periodic"`
	OffsetCorrection bool `yaml:"offset_correction"`
	Alarm1           bool `yaml:"alarm1"`
	Alarm2           bool `yaml:"alarm2"`
	Timestamp        bool `yaml:"timestamp"`
	BatterySwitch    bool `yaml:"battery_switch"`
	Watchdog         bool `yaml:"watchdog"`
}

func (c INTConfig) apply(reg byte) byte {
	set := func(bit byte, on bool) {
		if on {
			reg |= bit
		} else {
			reg &^= bit
		}
	}
	set(intPulseMode, c.PulseMode)
	set(intPeriodic, c.Periodic)
	set(intOffsetCorrection, c.OffsetCorrection)
	set(intAlarm1, c.Alarm1)
	set(intAlarm2, c.Alarm2)
	set(intTimestamp, c.Timestamp)
	set(intBatterySwitch, c.BatterySwitch)
	set(intWatchdog, c.Watchdog)
	return reg
}

func intConfigFromBits(reg byte) INTConfig {
	return INTConfig{
		PulseMode:        reg&intPulseMode != 0,
		Periodic:         reg&intPeriodic != 0,
		OffsetCorrection: reg&intOffsetCorrection != 0,
		Alarm1:           reg&intAlarm1 != 0,
		Alarm2:           reg&intAlarm2 != 0,
		Timestamp:        reg&intTimestamp != 0,
		BatterySwitch:    reg&intBatterySwitch != 0,
		Watchdog:         reg&intWatchdog != 0,
	}
}

// SetINTA configures the interrupt sources routed to the INTA pin.
func (d *PCF85263) SetINTA(ctx context.Context, cfg INTConfig) error {
	return d.setInterrupt(ctx, regINTAEnable, cfg, "A")
}

// SetINTB configures the interrupt sources routed to the INTB pin.
func (d *PCF85263) SetINTB(ctx context.Context, cfg INTConfig) error {
	return d.setInterrupt(ctx, regINTBEnable, cfg, "B")
}

// INTA reads back the INTA pin interrupt configuration.
func (d *PCF85263) INTA(ctx context.Context) (INTConfig, error) {
	return d.interrupt(ctx, regINTAEnable, "A")
}

// INTB reads back the INTB pin interrupt configuration.
func (d *PCF85263) INTB(ctx context.Context) (INTConfig, error) {
	return d.interrupt(ctx, regINTBEnable, "B")
}

func (d *PCF85263) setInterrupt(ctx context.Context, reg byte, cfg INTConfig, pin string) error {
	current, err := d.readRegister(ctx, reg)
	if err != nil {
		return fmt.Errorf("pcf85263: could not read INT%s enables: %w", pin, err)
	}
	if err := d.writeRegister(ctx, reg, cfg.apply(current)); err != nil {
		return fmt.Errorf("pcf85263: could not write INT%s enables: %w", pin, err)
	}
	return nil
}

func (d *PCF85263) interrupt(ctx context.Context, reg byte, pin string) (INTConfig, error) {
	current, err := d.readRegister(ctx, reg)
	if err != nil {
		return INTConfig{}, fmt.Errorf("pcf85263: could not read INT%s enables: %w", pin, err)
	}
	return intConfigFromBits(current), nil
}
