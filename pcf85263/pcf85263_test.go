package pcf85263

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mklimuk/rtc/datetime"
)

// MockI2CBus is a mock implementation of rtc.I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if args.Get(0) != nil {
		// Copy mock data to buffer if provided
		if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
			copy(buffer, data)
		}
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestBCDRoundTrip(t *testing.T) {
	for v := uint8(0); v <= 99; v++ {
		encoded := decToBcd(v)
		assert.Equal(t, v/10, encoded>>4)
		assert.Equal(t, v%10, encoded&0x0F)
		assert.Equal(t, v, bcdToDec(encoded))
	}
}

func TestBegin(t *testing.T) {
	t.Run("device responds", func(t *testing.T) {
		bus := new(MockI2CBus)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regRAMByte}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return([]byte{0xA5}, nil).Once()

		dev := New()
		assert.NoError(t, dev.Begin(context.Background(), bus))
		bus.AssertExpectations(t)
	})

	t.Run("device missing", func(t *testing.T) {
		bus := new(MockI2CBus)
		bus.On("WriteToAddr", mock.Anything, byte(0x52), []byte{regRAMByte}).
			Return(errors.New("no ack")).Once()

		dev := New(WithAddress(0x52))
		err := dev.Begin(context.Background(), bus)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "device not responding at 0x52")
		bus.AssertExpectations(t)
	})
}

func setupDevice(t *testing.T) (*PCF85263, *MockI2CBus) {
	t.Helper()
	bus := new(MockI2CBus)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regRAMByte}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return([]byte{0x00}, nil).Once()
	dev := New()
	assert.NoError(t, dev.Begin(context.Background(), bus))
	return dev, bus
}

func TestNow(t *testing.T) {
	dev, bus := setupDevice(t)
	// 2020-04-16 18:34:56 with the oscillator-stop flag set on seconds
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regSeconds}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return([]byte{0xD6, 0x34, 0x18, 0x16, 0x04, 0x04, 0x20}, nil).Once()

	now, err := dev.Now(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, datetime.New(2020, 4, 16, 18, 34, 56), now)
	bus.AssertExpectations(t)
}

func TestAdjust(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regSeconds, 0x56, 0x34, 0x18, 0x16, 0x00, 0x04, 0x20}).
		Return(nil).Once()

	err := dev.Adjust(context.Background(), datetime.New(2020, 4, 16, 18, 34, 56))
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestClockRoundTrip(t *testing.T) {
	dev, bus := setupDevice(t)
	dt := datetime.New(2067, 12, 31, 23, 59, 59)

	var written []byte
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Run(func(args mock.Arguments) {
			buf := args.Get(2).([]byte)
			if len(buf) == 8 {
				written = append([]byte(nil), buf...)
			}
		}).Return(nil)
	assert.NoError(t, dev.Adjust(context.Background(), dt))
	assert.Len(t, written, 8)

	// feed the written registers back through Now, weekday slot included
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return(written[1:], nil).Once()
	now, err := dev.Now(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, dt, now)
}

func TestLostTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds byte
		lost    bool
	}{
		{name: "flag set", seconds: 0xD6, lost: true},
		{name: "flag clear", seconds: 0x56, lost: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := setupDevice(t)
			bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regSeconds}).
				Return(nil).Once()
			bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
				Return([]byte{tt.seconds}, nil).Once()

			lost, err := dev.LostTime(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.lost, lost)
			bus.AssertExpectations(t)
		})
	}
}

func TestStartStop(t *testing.T) {
	tests := []struct {
		name    string
		op      func(*PCF85263, context.Context) error
		stopen  byte
		written *byte
	}{
		{
			name:   "start on running clock is a no-op",
			op:     (*PCF85263).Start,
			stopen: 0x00,
		},
		{
			name:    "start clears the stop bit",
			op:      (*PCF85263).Start,
			stopen:  0x01,
			written: ptr(byte(0x00)),
		},
		{
			name:   "stop on stopped clock is a no-op",
			op:     (*PCF85263).Stop,
			stopen: 0x01,
		},
		{
			name:    "stop sets the stop bit",
			op:      (*PCF85263).Stop,
			stopen:  0x00,
			written: ptr(byte(0x01)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := setupDevice(t)
			bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regStopEnable}).
				Return(nil).Once()
			bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
				Return([]byte{tt.stopen}, nil).Once()
			if tt.written != nil {
				bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regStopEnable, *tt.written}).
					Return(nil).Once()
			}

			assert.NoError(t, tt.op(dev, context.Background()))
			bus.AssertExpectations(t)
		})
	}
}

func TestSetAlarm(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regAlarm1Seconds, 0x00, 0x30, 0x07, 0x25, 0x06}).
		Return(nil).Once()

	err := dev.SetAlarm(context.Background(), datetime.New(2020, 6, 25, 7, 30, 0))
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestAlarm(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regAlarm1Seconds}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return([]byte{0x00, 0x30, 0x07, 0x25, 0x06}, nil).Once()

	alarm, err := dev.Alarm(context.Background())
	assert.NoError(t, err)
	// alarm registers carry no year; the placeholder is 2000
	assert.Equal(t, datetime.New(2000, 6, 25, 7, 30, 0), alarm)
	bus.AssertExpectations(t)
}

func TestAlarm2(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regAlarm2Seconds, 0x15, 0x45, 0x03}).
		Return(nil).Once()
	assert.NoError(t, dev.SetAlarm2(context.Background(), 15, 45, 3))

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regAlarm2Seconds}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return([]byte{0x15, 0x45, 0x03}, nil).Once()

	second, minute, weekday, err := dev.Alarm2(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint8(15), second)
	assert.Equal(t, uint8(45), minute)
	assert.Equal(t, uint8(3), weekday)
	bus.AssertExpectations(t)
}

func TestEnableAlarm(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		current  byte
		written  byte
		readback byte
	}{
		{name: "enable sets all comparator bits", enable: true, current: 0x80, written: 0x9F, readback: 0x9F},
		{name: "disable clears comparator bits only", enable: false, current: 0x9F, written: 0x80, readback: 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, bus := setupDevice(t)
			bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regAlarmEnables}).
				Return(nil).Twice()
			bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
				Return([]byte{tt.current}, nil).Once()
			bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regAlarmEnables, tt.written}).
				Return(nil).Once()
			bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
				Return([]byte{tt.readback}, nil).Once()

			enables, err := dev.EnableAlarm(context.Background(), tt.enable)
			assert.NoError(t, err)
			assert.Equal(t, tt.readback, enables)
			bus.AssertExpectations(t)
		})
	}
}

func TestTimestamps(t *testing.T) {
	dt := datetime.New(2023, 11, 5, 14, 7, 9)
	payload := []byte{0x09, 0x07, 0x14, 0x05, 0x11, 0x23}

	t.Run("set timestamp 1", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
			append([]byte{regTimestamp1Seconds}, payload...)).
			Return(nil).Once()
		assert.NoError(t, dev.SetTimestamp1(context.Background(), dt))
		bus.AssertExpectations(t)
	})

	t.Run("set timestamp 2", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
			append([]byte{regTimestamp2Seconds}, payload...)).
			Return(nil).Once()
		assert.NoError(t, dev.SetTimestamp2(context.Background(), dt))
		bus.AssertExpectations(t)
	})

	t.Run("read timestamp 1", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regTimestamp1Seconds}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return(payload, nil).Once()
		got, err := dev.Timestamp1(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, dt, got)
		bus.AssertExpectations(t)
	})

	t.Run("read battery switch timestamp", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regTimestamp3Seconds}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return(payload, nil).Once()
		got, err := dev.BatterySwitchTimestamp(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, dt, got)
		bus.AssertExpectations(t)
	})

	t.Run("read error is wrapped", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regTimestamp2Seconds}).
			Return(errors.New("bus stuck")).Once()
		_, err := dev.Timestamp2(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "could not read timestamp 2")
		bus.AssertExpectations(t)
	})
}

func TestConfigure(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regTimestampControl, defaultTimestampControl}).
		Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regPinIO, defaultPinIO}).
		Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress),
		[]byte{regINTAEnable, defaultINTAEnable}).
		Return(nil).Once()

	assert.NoError(t, dev.Configure(context.Background()))
	bus.AssertExpectations(t)
}

func TestInterruptConfig(t *testing.T) {
	t.Run("set INTA", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regINTAEnable}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return([]byte{0xFF}, nil).Once()
		// alarm1 with pulse mode, everything else cleared
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regINTAEnable, 0x90}).
			Return(nil).Once()

		err := dev.SetINTA(context.Background(), INTConfig{PulseMode: true, Alarm1: true})
		assert.NoError(t, err)
		bus.AssertExpectations(t)
	})

	t.Run("set INTB", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regINTBEnable}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return([]byte{0x00}, nil).Once()
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regINTBEnable, 0x06}).
			Return(nil).Once()

		err := dev.SetINTB(context.Background(), INTConfig{Timestamp: true, BatterySwitch: true})
		assert.NoError(t, err)
		bus.AssertExpectations(t)
	})

	t.Run("read INTA", func(t *testing.T) {
		dev, bus := setupDevice(t)
		bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regINTAEnable}).
			Return(nil).Once()
		bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
			Return([]byte{0b00010100}, nil).Once()

		cfg, err := dev.INTA(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, INTConfig{Alarm1: true, Timestamp: true}, cfg)
		bus.AssertExpectations(t)
	})

	t.Run("bit mapping round trip", func(t *testing.T) {
		for bit := 0; bit < 8; bit++ {
			reg := byte(1 << bit)
			assert.Equal(t, reg, intConfigFromBits(reg).apply(0))
		}
	})
}

func TestRAM(t *testing.T) {
	dev, bus := setupDevice(t)
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regRAMByte, 0x42}).
		Return(nil).Once()
	assert.NoError(t, dev.WriteRAM(context.Background(), 0x42))

	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regRAMByte}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).
		Return([]byte{0x42}, nil).Once()

	val, err := dev.ReadRAM(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, byte(0x42), val)
	bus.AssertExpectations(t)
}

func ptr[T any](v T) *T { return &v }
