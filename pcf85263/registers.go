package pcf85263

// DefaultAddress is the fixed 7-bit I2C address of the PCF85263.
const DefaultAddress = 0x51

// Register map (per datasheet, RTC mode).
const (
	regHundredths byte = 0x00
	regSeconds    byte = 0x01
	regMinutes    byte = 0x02
	regHours      byte = 0x03
	regDays       byte = 0x04
	regWeekdays   byte = 0x05
	regMonths     byte = 0x06
	regYears      byte = 0x07

	regAlarm1Seconds byte = 0x08
	regAlarm1Minutes byte = 0x09
	regAlarm1Hours   byte = 0x0A
	regAlarm1Days    byte = 0x0B
	regAlarm1Months  byte = 0x0C

	regAlarm2Seconds byte = 0x0D
	regAlarm2Minutes byte = 0x0E
	regAlarm2Weekday byte = 0x0F

	regAlarmEnables byte = 0x10

	regTimestamp1Seconds byte = 0x11
	regTimestamp2Seconds byte = 0x17
	regTimestamp3Seconds byte = 0x1D

	regTimestampControl byte = 0x23
	regOffset           byte = 0x24
	regOscillator       byte = 0x25
	regBatterySwitch    byte = 0x26
	regPinIO            byte = 0x27
	regFunction         byte = 0x28
	regINTAEnable       byte = 0x29
	regINTBEnable       byte = 0x2A
	regFlags            byte = 0x2B
	regRAMByte          byte = 0x2C
	regWatchdog         byte = 0x2D
	regStopEnable       byte = 0x2E
	regResets           byte = 0x2F
)

// Field masks stripping flag and reserved bits before BCD decoding. The top
// bit of the seconds byte is the oscillator-stop flag, not a time digit.
const (
	maskSeconds byte = 0x7F
	maskMinutes byte = 0x7F
	maskHours   byte = 0x3F
	maskDays    byte = 0x3F
	maskMonths  byte = 0x1F
	maskWeekday byte = 0x07
)

const oscStopFlag byte = 0x80

// STOP bit in the stop-enable register.
const stopBit byte = 0x01

// Low five bits of the alarm-enable register arm the alarm1/alarm2
// comparators.
const alarmEnableAll byte = 0x1F

// Power-up defaults written by Configure: timestamp capture on first event,
// INTA output on the interrupt pin, timestamp and alarm1 interrupts routed
// to INTA.
const (
	defaultTimestampControl byte = 0b10000000
	defaultPinIO            byte = 0b00000010
	defaultINTAEnable       byte = 0b00010100
)
