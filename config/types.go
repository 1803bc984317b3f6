package config

// DisplayConfig describes the attached character display.
type DisplayConfig struct {
	Width   int    `yaml:"width" validate:"gt=0"`
	Rows    int    `yaml:"rows" validate:"gt=0"`
	I2CBus  string `yaml:"i2cBus"`
	I2CAddr uint8  `yaml:"i2cAddr"`
}

// AppConfig is the root board configuration. The ODPT API key is not part of
// the file; it is read from the ODPT_API_KEY environment variable.
type AppConfig struct {
	Station        string        `yaml:"station" validate:"required"`
	Direction      string        `yaml:"direction" validate:"oneof=Inbound Outbound"`
	Display        DisplayConfig `yaml:"display"`
	RefreshSeconds int           `yaml:"refreshSeconds" validate:"gt=0"`
	TimeoutSeconds int           `yaml:"timeoutSeconds" validate:"gte=0"`
	Animation      string        `yaml:"animation" validate:"oneof=paging scrolling"`
	WindowStart    int           `yaml:"windowStart" validate:"gte=0"`
	Wipe           string        `yaml:"wipe" validate:"oneof=up down"`

	APIKey string `yaml:"-"`
}
