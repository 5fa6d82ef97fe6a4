// Package pcf85263 implements a driver for the NXP PCF85263 tiny real-time
// clock/calendar with alarm function, battery switch-over, timestamp input
// and I2C bus.
// See: https://www.nxp.com/docs/en/data-sheet/PCF85263A.pdf
//
// Calendar values are exchanged as datetime.DateTime. The driver keeps no
// state beyond the transport handle and a scratch buffer; a single instance
// must not be used concurrently.
package pcf85263

import (
	"context"
	"fmt"

	"github.com/mklimuk/rtc"
	"github.com/mklimuk/rtc/datetime"
)

type Config struct {
	Address byte
}

type Option func(*Config)

func WithAddress(address byte) Option {
	return func(c *Config) {
		c.Address = address
	}
}

// PCF85263 talks to the chip through an rtc.I2CBus attached by Begin. The
// transport handle is owned exclusively and replaced wholesale on re-Begin.
type PCF85263 struct {
	transport rtc.I2CBus
	addr      byte
	buf       [8]byte
}

func New(opts ...Option) *PCF85263 {
	config := Config{Address: DefaultAddress}
	for _, opt := range opts {
		opt(&config)
	}
	return &PCF85263{addr: config.Address}
}

// Begin attaches bus as the device transport, replacing any previous handle,
// and probes for the chip by reading its RAM byte register. It fails when
// the device does not respond.
func (d *PCF85263) Begin(ctx context.Context, bus rtc.I2CBus) error {
	d.transport = bus
	if _, err := d.readRegister(ctx, regRAMByte); err != nil {
		return fmt.Errorf("pcf85263: device not responding at %#x: %w", d.addr, err)
	}
	return nil
}

// Configure writes the power-up defaults for timestamp capture, pin IO and
// INTA routing. The values are fixed; call once after Begin.
func (d *PCF85263) Configure(ctx context.Context) error {
	if err := d.writeRegister(ctx, regTimestampControl, defaultTimestampControl); err != nil {
		return fmt.Errorf("pcf85263: could not configure timestamp control: %w", err)
	}
	if err := d.writeRegister(ctx, regPinIO, defaultPinIO); err != nil {
		return fmt.Errorf("pcf85263: could not configure pin IO: %w", err)
	}
	if err := d.writeRegister(ctx, regINTAEnable, defaultINTAEnable); err != nil {
		return fmt.Errorf("pcf85263: could not configure INTA enables: %w", err)
	}
	return nil
}

// Now reads the current date and time from the clock registers.
func (d *PCF85263) Now(ctx context.Context) (datetime.DateTime, error) {
	buf := d.buf[:7]
	if err := d.readBlock(ctx, regSeconds, buf); err != nil {
		return datetime.DateTime{}, fmt.Errorf("pcf85263: could not read clock: %w", err)
	}
	return datetime.New(
		2000+uint16(bcdToDec(buf[6])),
		bcdToDec(buf[5]&maskMonths),
		bcdToDec(buf[3]&maskDays),
		bcdToDec(buf[2]&maskHours),
		bcdToDec(buf[1]&maskMinutes),
		bcdToDec(buf[0]&maskSeconds),
	), nil
}

// Adjust sets the clock registers to dt in a single write transaction. The
// weekday register is written as zero; it is not derived from the date.
func (d *PCF85263) Adjust(ctx context.Context, dt datetime.DateTime) error {
	buf := []byte{
		regSeconds,
		decToBcd(dt.Second()),
		decToBcd(dt.Minute()),
		decToBcd(dt.Hour()),
		decToBcd(dt.Day()),
		decToBcd(0),
		decToBcd(dt.Month()),
		decToBcd(uint8(dt.Year() - 2000)),
	}
	if err := d.transport.WriteToAddr(ctx, d.addr, buf); err != nil {
		return fmt.Errorf("pcf85263: could not set clock: %w", err)
	}
	return nil
}

// LostTime reports whether the oscillator-stop flag is set in the seconds
// register, meaning the clock integrity is not guaranteed and the time
// should be adjusted.
func (d *PCF85263) LostTime(ctx context.Context) (bool, error) {
	sec, err := d.readRegister(ctx, regSeconds)
	if err != nil {
		return false, fmt.Errorf("pcf85263: could not read oscillator-stop flag: %w", err)
	}
	return sec&oscStopFlag != 0, nil
}

// Start clears the STOP bit so the clock runs. The bit is only written when
// currently set.
func (d *PCF85263) Start(ctx context.Context) error {
	stopen, err := d.readRegister(ctx, regStopEnable)
	if err != nil {
		return fmt.Errorf("pcf85263: could not read stop state: %w", err)
	}
	if stopen&stopBit == 0 {
		return nil
	}
	if err := d.writeRegister(ctx, regStopEnable, stopen&^stopBit); err != nil {
		return fmt.Errorf("pcf85263: could not start clock: %w", err)
	}
	return nil
}

// Stop sets the STOP bit, freezing the clock. The bit is only written when
// currently clear.
func (d *PCF85263) Stop(ctx context.Context) error {
	stopen, err := d.readRegister(ctx, regStopEnable)
	if err != nil {
		return fmt.Errorf("pcf85263: could not read stop state: %w", err)
	}
	if stopen&stopBit != 0 {
		return nil
	}
	if err := d.writeRegister(ctx, regStopEnable, stopen|stopBit); err != nil {
		return fmt.Errorf("pcf85263: could not stop clock: %w", err)
	}
	return nil
}

// SetAlarm sets the alarm1 date and time. Alarm registers hold no year, so
// the year component of dt is discarded.
func (d *PCF85263) SetAlarm(ctx context.Context, dt datetime.DateTime) error {
	buf := []byte{
		regAlarm1Seconds,
		decToBcd(dt.Second()),
		decToBcd(dt.Minute()),
		decToBcd(dt.Hour()),
		decToBcd(dt.Day()),
		decToBcd(dt.Month()),
	}
	if err := d.transport.WriteToAddr(ctx, d.addr, buf); err != nil {
		return fmt.Errorf("pcf85263: could not set alarm1: %w", err)
	}
	return nil
}

// Alarm reads the alarm1 date and time. Since the alarm registers hold no
// year, the returned instant carries the placeholder year 2000; callers must
// not rely on it.
func (d *PCF85263) Alarm(ctx context.Context) (datetime.DateTime, error) {
	buf := d.buf[:5]
	if err := d.readBlock(ctx, regAlarm1Seconds, buf); err != nil {
		return datetime.DateTime{}, fmt.Errorf("pcf85263: could not read alarm1: %w", err)
	}
	return datetime.New(
		2000,
		bcdToDec(buf[4]&maskMonths),
		bcdToDec(buf[3]&maskDays),
		bcdToDec(buf[2]&maskHours),
		bcdToDec(buf[1]&maskMinutes),
		bcdToDec(buf[0]&maskSeconds),
	), nil
}

// SetAlarm2 sets the alarm2 comparator, which matches on second, minute and
// weekday (0=Sunday through 6=Saturday) only.
func (d *PCF85263) SetAlarm2(ctx context.Context, second, minute, weekday uint8) error {
	buf := []byte{
		regAlarm2Seconds,
		decToBcd(second),
		decToBcd(minute),
		decToBcd(weekday),
	}
	if err := d.transport.WriteToAddr(ctx, d.addr, buf); err != nil {
		return fmt.Errorf("pcf85263: could not set alarm2: %w", err)
	}
	return nil
}

// Alarm2 reads the alarm2 second, minute and weekday.
func (d *PCF85263) Alarm2(ctx context.Context) (second, minute, weekday uint8, err error) {
	buf := d.buf[:3]
	if err = d.readBlock(ctx, regAlarm2Seconds, buf); err != nil {
		return 0, 0, 0, fmt.Errorf("pcf85263: could not read alarm2: %w", err)
	}
	return bcdToDec(buf[0] & maskSeconds), bcdToDec(buf[1] & maskMinutes), bcdToDec(buf[2] & maskWeekday), nil
}

// EnableAlarm arms (or disarms) all five alarm comparator enables and
// returns the alarm-enable register as read back after the write.
func (d *PCF85263) EnableAlarm(ctx context.Context, enable bool) (byte, error) {
	enables, err := d.readRegister(ctx, regAlarmEnables)
	if err != nil {
		return 0, fmt.Errorf("pcf85263: could not read alarm enables: %w", err)
	}
	if enable {
		enables |= alarmEnableAll
	} else {
		enables &^= alarmEnableAll
	}
	if err := d.writeRegister(ctx, regAlarmEnables, enables); err != nil {
		return 0, fmt.Errorf("pcf85263: could not write alarm enables: %w", err)
	}
	enables, err = d.readRegister(ctx, regAlarmEnables)
	if err != nil {
		return 0, fmt.Errorf("pcf85263: could not read back alarm enables: %w", err)
	}
	return enables, nil
}

// SetTimestamp1 writes the first timestamp register block.
func (d *PCF85263) SetTimestamp1(ctx context.Context, dt datetime.DateTime) error {
	if err := d.writeTimestamp(ctx, regTimestamp1Seconds, dt); err != nil {
		return fmt.Errorf("pcf85263: could not set timestamp 1: %w", err)
	}
	return nil
}

// Timestamp1 reads the first timestamp register block.
func (d *PCF85263) Timestamp1(ctx context.Context) (datetime.DateTime, error) {
	dt, err := d.readTimestamp(ctx, regTimestamp1Seconds)
	if err != nil {
		return datetime.DateTime{}, fmt.Errorf("pcf85263: could not read timestamp 1: %w", err)
	}
	return dt, nil
}

// SetTimestamp2 writes the second timestamp register block.
func (d *PCF85263) SetTimestamp2(ctx context.Context, dt datetime.DateTime) error {
	if err := d.writeTimestamp(ctx, regTimestamp2Seconds, dt); err != nil {
		return fmt.Errorf("pcf85263: could not set timestamp 2: %w", err)
	}
	return nil
}

// Timestamp2 reads the second timestamp register block.
func (d *PCF85263) Timestamp2(ctx context.Context) (datetime.DateTime, error) {
	dt, err := d.readTimestamp(ctx, regTimestamp2Seconds)
	if err != nil {
		return datetime.DateTime{}, fmt.Errorf("pcf85263: could not read timestamp 2: %w", err)
	}
	return dt, nil
}

// BatterySwitchTimestamp reads the third timestamp block, which the chip
// fills when it switches to battery supply.
func (d *PCF85263) BatterySwitchTimestamp(ctx context.Context) (datetime.DateTime, error) {
	dt, err := d.readTimestamp(ctx, regTimestamp3Seconds)
	if err != nil {
		return datetime.DateTime{}, fmt.Errorf("pcf85263: could not read battery-switch timestamp: %w", err)
	}
	return dt, nil
}

// ReadRAM reads the free scratch byte.
func (d *PCF85263) ReadRAM(ctx context.Context) (byte, error) {
	val, err := d.readRegister(ctx, regRAMByte)
	if err != nil {
		return 0, fmt.Errorf("pcf85263: could not read RAM byte: %w", err)
	}
	return val, nil
}

// WriteRAM writes the free scratch byte.
func (d *PCF85263) WriteRAM(ctx context.Context, val byte) error {
	if err := d.writeRegister(ctx, regRAMByte, val); err != nil {
		return fmt.Errorf("pcf85263: could not write RAM byte: %w", err)
	}
	return nil
}

func (d *PCF85263) readTimestamp(ctx context.Context, reg byte) (datetime.DateTime, error) {
	buf := d.buf[:6]
	if err := d.readBlock(ctx, reg, buf); err != nil {
		return datetime.DateTime{}, err
	}
	return datetime.New(
		2000+uint16(bcdToDec(buf[5])),
		bcdToDec(buf[4]&maskMonths),
		bcdToDec(buf[3]&maskDays),
		bcdToDec(buf[2]&maskHours),
		bcdToDec(buf[1]&maskMinutes),
		bcdToDec(buf[0]&maskSeconds),
	), nil
}

func (d *PCF85263) writeTimestamp(ctx context.Context, reg byte, dt datetime.DateTime) error {
	buf := []byte{
		reg,
		decToBcd(dt.Second()),
		decToBcd(dt.Minute()),
		decToBcd(dt.Hour()),
		decToBcd(dt.Day()),
		decToBcd(dt.Month()),
		decToBcd(uint8(dt.Year() - 2000)),
	}
	return d.transport.WriteToAddr(ctx, d.addr, buf)
}

func (d *PCF85263) readBlock(ctx context.Context, reg byte, buf []byte) error {
	if err := d.transport.WriteToAddr(ctx, d.addr, []byte{reg}); err != nil {
		return fmt.Errorf("could not select register %#x: %w", reg, err)
	}
	if err := d.transport.ReadFromAddr(ctx, d.addr, buf); err != nil {
		return fmt.Errorf("could not read %d bytes at register %#x: %w", len(buf), reg, err)
	}
	return nil
}

func (d *PCF85263) readRegister(ctx context.Context, reg byte) (byte, error) {
	buf := d.buf[:1]
	if err := d.readBlock(ctx, reg, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *PCF85263) writeRegister(ctx context.Context, reg, val byte) error {
	return d.transport.WriteToAddr(ctx, d.addr, []byte{reg, val})
}

// decToBcd converts a binary value to the BCD form used by the registers.
func decToBcd(dec uint8) byte {
	return dec + 6*(dec/10)
}

// bcdToDec converts a BCD register value to binary.
func bcdToDec(bcd byte) uint8 {
	return bcd - 6*(bcd>>4)
}
