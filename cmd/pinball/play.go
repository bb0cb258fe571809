package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pinball/internal/audio"
	"github.com/vovakirdan/tui-pinball/internal/config"
	"github.com/vovakirdan/tui-pinball/internal/core"
	"github.com/vovakirdan/tui-pinball/internal/platform/tui"
	"github.com/vovakirdan/tui-pinball/internal/registry"
)

const defaultTable = "classic"

var (
	flagDifficulty string
	flagTableFile  string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [table]",
	Short: "Play a table",
	Long: `Start playing the specified table (classic if omitted).

Controls:
  Space      - Launch a ball / continue
  Z / Left   - Left flipper
  M / Right  - Right flipper
  P          - Pause
  Ctrl+S     - Screenshot to ~/.pinball/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Lighter gravity, softer bumpers
  normal - Start at 30% difficulty, gravity grows with score
  hard   - Heavier gravity, livelier bumpers
  fixed  - No progression, stays at config's initial level

Examples:
  pinball play
  pinball play gauntlet --difficulty hard
  pinball play --table-file ./my-table.yaml
  pinball play --mute --log /tmp/pinball.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTableFile, "table-file", "", "Load the table layout from a YAML file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	var (
		layout config.TableLayout
		err    error
	)
	switch {
	case flagTableFile != "":
		layout, err = config.LoadTableFile(flagTableFile)
	default:
		id := defaultTable
		if len(args) == 1 {
			id = args[0]
		}
		if !registry.Exists(id) {
			return fmt.Errorf("unknown table %q (run 'pinball list' to see available tables)", id)
		}
		layout, err = registry.Load(id)
	}
	if err != nil {
		return err
	}
	return playTable(layout, runtimeConfig())
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.PinballConfig, error) {
	cfg, err := config.LoadPinball(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset := config.ParseDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPinballPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig reads the terminal size and the clock flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagPhysicsHz > 0 {
		cfg.PhysicsRate = flagPhysicsHz
	}
	return cfg
}

// newLogger builds the file logger. The terminal belongs to the game, so
// without --log everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if flagLogPath != "" {
		path := expandHome(flagLogPath)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pinball",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// playTable runs one session on layout until the player quits.
func playTable(layout config.TableLayout, rt core.RuntimeConfig) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	board, err := audio.Open(cfg.Audio)
	if err != nil {
		// Non-fatal, the table plays silently
		logger.Warn("audio unavailable", "error", err)
	}
	defer board.Close()

	session, err := tui.NewSession(tui.SessionOptions{
		Table:   layout,
		Config:  cfg,
		Runtime: rt,
		Audio:   board,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	err = tui.Run(session, rt)
	st := session.State()
	logger.Info("session ended", "table", layout.Name, "points", st.Score)
	return err
}
