package main

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"simonsays/config"
	"simonsays/debug"
	"simonsays/game"
	"simonsays/shield"
	"simonsays/sound"
	"simonsays/theme"
	"simonsays/tui"
)

var (
	configPath  string
	profilePath string
	debugLog    bool

	mainCmd = &cobra.Command{
		Use:   "simonsays",
		Short: "Simon-style memory game for LCD keypad shields",
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal on a simulated shield",
		Run:   runPlay,
	}
	shieldCmd = &cobra.Command{
		Use:   "shield",
		Short: "Play on a real LCD keypad shield over Firmata",
		Run:   runShield,
	}
)

func loadConfig() *config.Config {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			log.Fatalln("load config:", err)
		}
		return cfg
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warnln("load config:", err)
		return config.DefaultConfig()
	}
	return cfg
}

func enableDebug() {
	if !debugLog {
		return
	}
	if err := debug.Enable(); err != nil {
		log.Warnln("debug log:", err)
		return
	}
	log.Infoln("debug log:", debug.Path())
}

func newSounder(cfg config.SoundConfig) game.Sounder {
	snd, err := sound.New(cfg.Backend, cfg.MIDIPort)
	if err != nil {
		log.Warnln("sound disabled:", err)
		return nil
	}
	return snd
}

func gameConfig(cfg config.GameConfig) game.Config {
	return game.Config{
		MaxLevel:     cfg.MaxLevel,
		PlaybackHold: cfg.PlaybackHold(),
		PlaybackGap:  cfg.PlaybackGap(),
		OutcomeDwell: cfg.OutcomeDwell(),
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	enableDebug()
	defer debug.Disable()

	var th *theme.Theme
	if strings.HasSuffix(cfg.Sim.Theme, ".gpl") {
		loaded, err := theme.FromGPL(cfg.Sim.Theme)
		if err != nil {
			log.Fatalln("theme:", err)
		}
		th = loaded
	} else {
		th = theme.ForName(cfg.Sim.Theme)
	}

	screen := tui.NewScreen()
	sampler := tui.NewSampler(cfg.Sim.KeyHold(), cfg.Sim.NoiseAmp, screen.Notify)

	decoder := game.NewDecoder(sampler)
	decoder.PollInterval = cfg.Game.PollInterval()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	machine := game.NewMachine(decoder, screen, newSounder(cfg.Sound), rng, gameConfig(cfg.Game))

	// The game loop blocks on key presses, so it lives on its own
	// goroutine and talks to the TUI through the screen buffer.
	go machine.Run()

	m := tui.NewModel(screen, sampler, th)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalln("tui:", err)
	}
}

func runShield(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	enableDebug()
	defer debug.Disable()

	path := profilePath
	if path == "" {
		path = cfg.Shield.Profile
	}

	profile := shield.DefaultProfile()
	if path != "" {
		loaded, err := shield.LoadProfile(path)
		if err != nil {
			log.Fatalln("load profile:", err)
		}
		profile = loaded
	}

	table, err := profile.Thresholds()
	if err != nil {
		log.Fatalln("profile:", err)
	}

	sh, err := shield.Open(profile)
	if err != nil {
		log.Fatalln("open shield:", err)
	}
	defer sh.Close()

	decoder := game.NewDecoder(sh)
	decoder.Table = table
	decoder.PollInterval = profile.PollInterval()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	machine := game.NewMachine(decoder, sh, newSounder(cfg.Sound), rng, gameConfig(cfg.Game))
	machine.Run()
}

func main() {
	mainCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path. Overrides the default config file location")
	mainCmd.PersistentFlags().BoolVarP(&debugLog, "debug", "d", false, "Write a debug log to the user config directory")
	shieldCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Hardware profile path. Overrides the profile named in the config")
	mainCmd.AddCommand(playCmd, shieldCmd)
	mainCmd.Execute()
}
