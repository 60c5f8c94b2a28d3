package shield

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"simonsays/game"
)

// LCDPins names the pins driving the HD44780 in 4-bit mode. Strings
// because Firmata addresses pins by name.
type LCDPins struct {
	RS string
	EN string
	D4 string
	D5 string
	D6 string
	D7 string
}

// Band overrides one decode band. Ladders drift with resistor tolerance,
// so a calibrated board can ship its own table.
type Band struct {
	Max int
	Key string
}

// Profile describes one physical board: where it is attached and how it
// is wired.
type Profile struct {
	Port           string // serial device speaking Firmata
	AnalogPin      string // the keypad ladder pin
	PollIntervalMs int64
	LCD            LCDPins
	Band           []Band // empty means the stock thresholds
}

// DefaultProfile matches a stock LCD keypad shield on an Uno.
func DefaultProfile() *Profile {
	return &Profile{
		Port:      "/dev/ttyACM0",
		AnalogPin: "0",
		LCD: LCDPins{
			RS: "8",
			EN: "9",
			D4: "4",
			D5: "5",
			D6: "6",
			D7: "7",
		},
	}
}

// LoadProfile reads a TOML profile. Fields absent from the file keep
// their default, so a profile can override just the port.
func LoadProfile(path string) (*Profile, error) {
	p := DefaultProfile()
	if _, err := toml.DecodeFile(path, p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Profile) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalMs) * time.Millisecond
}

var keyByName = map[string]game.Key{
	"right":  game.KeyRight,
	"up":     game.KeyUp,
	"down":   game.KeyDown,
	"left":   game.KeyLeft,
	"select": game.KeySelect,
}

// Thresholds builds the decode table for this board.
func (p *Profile) Thresholds() (game.ThresholdTable, error) {
	if len(p.Band) == 0 {
		return game.DefaultThresholds, nil
	}

	table := make(game.ThresholdTable, 0, len(p.Band))
	for _, b := range p.Band {
		key, ok := keyByName[strings.ToLower(b.Key)]
		if !ok {
			return nil, fmt.Errorf("band key %q is not a button", b.Key)
		}
		if b.Max < 0 || b.Max > game.SampleMax {
			return nil, fmt.Errorf("band max %d out of range", b.Max)
		}
		table = append(table, game.Band{Max: uint16(b.Max), Key: key})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks the profile before any hardware is touched.
func (p *Profile) Validate() error {
	if p.Port == "" {
		return fmt.Errorf("profile names no serial port")
	}
	if p.AnalogPin == "" {
		return fmt.Errorf("profile names no analog pin")
	}

	pins := map[string]string{
		"RS": p.LCD.RS, "EN": p.LCD.EN,
		"D4": p.LCD.D4, "D5": p.LCD.D5, "D6": p.LCD.D6, "D7": p.LCD.D7,
	}
	for name, pin := range pins {
		if pin == "" {
			return fmt.Errorf("lcd pin %s is empty", name)
		}
	}

	if _, err := p.Thresholds(); err != nil {
		return err
	}
	return nil
}

const profileFile = `# Hardware profile for a Firmata board with an LCD keypad shield.

Port = "/dev/ttyACM0"

# Analog pin the button ladder feeds
AnalogPin = "0"

# Delay between keypad samples (0 uses the built-in 10ms)
PollIntervalMs = 10

[LCD]
	RS = "8"
	EN = "9"
	D4 = "4"
	D5 = "5"
	D6 = "6"
	D7 = "7"

# Uncomment to override the decode bands after calibrating with
# "shieldscan watch". Bands are upper bounds, ascending.
#
# [[Band]]
# 	Max = 50
# 	Key = "right"
# [[Band]]
# 	Max = 250
# 	Key = "up"
# [[Band]]
# 	Max = 450
# 	Key = "down"
# [[Band]]
# 	Max = 650
# 	Key = "left"
# [[Band]]
# 	Max = 850
# 	Key = "select"
`

// WriteExample writes the annotated example profile. Existing files are
// left alone.
func WriteExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(profileFile), 0644)
}
