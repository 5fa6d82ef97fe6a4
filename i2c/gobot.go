package i2c

import (
	"context"
	"fmt"
	"sync"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/mklimuk/rtc"
)

var _ rtc.I2CBus = &GobotBus{}

// GobotBus adapts a gobot platform connector (nanopi, raspi and friends) to
// rtc.I2CBus. Connections are opened per device address on first use and
// cached until Close.
type GobotBus struct {
	mx        sync.Mutex
	connector i2c.Connector
	busNr     int
	conns     map[byte]i2c.Connection
}

func NewGobotBus(connector i2c.Connector, busNr int) *GobotBus {
	return &GobotBus{
		connector: connector,
		busNr:     busNr,
		conns:     map[byte]i2c.Connection{},
	}
}

func (b *GobotBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read from i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short read from %x: %d of %d bytes", address, n, len(buffer))
	}
	return nil
}

func (b *GobotBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Write(buffer)
	if err != nil {
		return fmt.Errorf("could not write to i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short write to %x: %d of %d bytes", address, n, len(buffer))
	}
	return nil
}

func (b *GobotBus) Release(ctx context.Context) error {
	return nil
}

func (b *GobotBus) Close() error {
	b.mx.Lock()
	defer b.mx.Unlock()
	var first error
	for addr, conn := range b.conns {
		if err := conn.Close(); err != nil && first == nil {
			first = fmt.Errorf("could not close connection to %x: %w", addr, err)
		}
		delete(b.conns, addr)
	}
	return first
}

func (b *GobotBus) connection(address byte) (i2c.Connection, error) {
	b.mx.Lock()
	defer b.mx.Unlock()
	if conn, ok := b.conns[address]; ok {
		return conn, nil
	}
	conn, err := b.connector.GetI2cConnection(int(address), b.busNr)
	if err != nil {
		return nil, fmt.Errorf("could not open i2c connection to %x: %w", address, err)
	}
	b.conns[address] = conn
	return conn, nil
}
