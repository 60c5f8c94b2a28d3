package shield

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gobot.io/x/gobot/v2/drivers/gpio"
	"gobot.io/x/gobot/v2/platforms/firmata"

	"simonsays/debug"
	"simonsays/game"
)

// Shield is a real LCD keypad shield reached over Firmata: the analog
// source is the ladder pin, the display is the HD44780 behind it. The
// game loop is the only caller, so no locking is needed here.
type Shield struct {
	profile  *Profile
	adaptor  *firmata.Adaptor
	lcd      *gpio.HD44780Driver
	failures int
}

// Open connects to the board and brings up the display.
func Open(p *Profile) (*Shield, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	adaptor := firmata.NewAdaptor(p.Port)
	if err := adaptor.Connect(); err != nil {
		return nil, fmt.Errorf("connect %s: %w", p.Port, err)
	}

	lcd := gpio.NewHD44780Driver(adaptor,
		game.DisplayCols, game.DisplayRows,
		gpio.HD44780_4BITMODE,
		p.LCD.RS, p.LCD.EN,
		gpio.HD44780DataPin{D4: p.LCD.D4, D5: p.LCD.D5, D6: p.LCD.D6, D7: p.LCD.D7},
	)
	if err := lcd.Start(); err != nil {
		adaptor.Finalize()
		return nil, fmt.Errorf("start lcd: %w", err)
	}

	log.WithFields(log.Fields{
		"Port": p.Port,
		"Pin":  p.AnalogPin,
	}).Infoln("shield connected")

	return &Shield{profile: p, adaptor: adaptor, lcd: lcd}, nil
}

// Sample reads the ladder pin. Read failures come back as the released
// level, so a flaky link looks like nobody pressing rather than a
// phantom key.
func (s *Shield) Sample() int {
	v, err := s.adaptor.AnalogRead(s.profile.AnalogPin)
	if err != nil {
		s.failures++
		if s.failures == 1 {
			log.WithFields(log.Fields{
				"Pin": s.profile.AnalogPin,
			}).Warnln("analog read failed:", err)
		}
		debug.LogEvery(100, "shield", "analog read failed: %v", err)
		return game.SampleMax
	}
	s.failures = 0

	if v < 0 {
		return 0
	}
	if v > game.SampleMax {
		return game.SampleMax
	}
	return v
}

// ShowAt writes text at the given cell, clipped to the row.
func (s *Shield) ShowAt(row, col int, text string) {
	if row < 0 || row >= game.DisplayRows || col < 0 || col >= game.DisplayCols {
		return
	}
	if len(text) > game.DisplayCols-col {
		text = text[:game.DisplayCols-col]
	}

	if err := s.lcd.SetCursor(col, row); err != nil {
		debug.Log("shield", "set cursor: %v", err)
		return
	}
	if err := s.lcd.Write(text); err != nil {
		debug.Log("shield", "write: %v", err)
	}
}

// Clear blanks the display.
func (s *Shield) Clear() {
	if err := s.lcd.Clear(); err != nil {
		debug.Log("shield", "clear: %v", err)
	}
}

// Close releases the serial connection.
func (s *Shield) Close() error {
	return s.adaptor.Finalize()
}
