// Package display abstracts the character display behind a small capability
// interface with two implementations: an HD44780 LCD on an I2C backpack
// (the hardware the board was built for) and a console renderer for
// development without the hardware attached.
package display
