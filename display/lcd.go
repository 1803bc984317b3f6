package display

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers/hd44780i2c"
)

// LCD drives an HD44780 character display behind an I2C backpack.
type LCD struct {
	dev hd44780i2c.Device
	bus i2c.BusCloser
}

// OpenLCD initializes the periph host, opens the named I2C bus (empty name
// selects the first available bus) and configures the display geometry.
func OpenLCD(busName string, addr uint8, width, rows int) (*LCD, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus: %w", err)
	}
	dev := hd44780i2c.New(bus, addr)
	if err := dev.Configure(hd44780i2c.Config{
		Width:  uint8(width),
		Height: uint8(rows),
	}); err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("configure lcd: %w", err)
	}
	return &LCD{dev: dev, bus: bus}, nil
}

func (l *LCD) Clear() {
	l.dev.ClearDisplay()
}

func (l *LCD) WriteRow(text string, row int) {
	l.WriteAt(text, row, 0)
}

func (l *LCD) WriteAt(text string, row, col int) {
	l.dev.SetCursor(uint8(col), uint8(row-1))
	l.dev.Print([]byte(text))
}

// Close releases the I2C bus.
func (l *LCD) Close() error {
	return l.bus.Close()
}
