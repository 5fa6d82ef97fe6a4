// Package rtc defines the byte transport contract shared by the PCF85263
// driver and the bus implementations under adapter/ and i2c/.
package rtc

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// I2CBus is a register-oriented transport addressed by 7-bit device address.
// A register read is a register-address write followed by a consecutive read;
// a block write is a single address-prefixed transaction.
type I2CBus interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}
