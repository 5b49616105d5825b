package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pacmaze/internal/application/game"
	"github.com/younwookim/pacmaze/internal/application/replay"
	"github.com/younwookim/pacmaze/internal/application/scene"
	"github.com/younwookim/pacmaze/internal/application/scene/generating"
	"github.com/younwookim/pacmaze/internal/application/scene/playing"
	"github.com/younwookim/pacmaze/internal/application/system"
	"github.com/younwookim/pacmaze/internal/domain/board"
	"github.com/younwookim/pacmaze/internal/infrastructure/config"
	"github.com/younwookim/pacmaze/internal/infrastructure/logging"
)

//go:embed configs/game.toml
var configFS embed.FS

const embeddedConfig = "configs/game.toml"

func main() {
	configFlag := flag.String("config", "", "Load settings from a toml or yaml file instead of the embedded defaults")
	seedFlag := flag.Int64("seed", 0, "Maze seed (0 = use config, then time)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, *seedFlag, *recordFlag, *replayFlag, logger); err != nil {
		logger.Error("game exited", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFS(configFS, embeddedConfig)
	}
	return config.Load(path)
}

// resolveSeed picks the board seed: a replay's recorded seed wins, then the
// flag, then the config file, then the clock.
func resolveSeed(replaySeed *int64, flagSeed, configSeed int64, now time.Time) int64 {
	switch {
	case replaySeed != nil:
		return *replaySeed
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return now.UnixNano()
	}
}

func run(cfg *config.Config, flagSeed int64, recordPath, replayPath string, logger *zap.Logger) error {
	var replayer *replay.Replayer
	var replaySeed *int64
	if replayPath != "" {
		data, err := replay.LoadReplay(replayPath)
		if err != nil {
			return err
		}
		replayer = replay.NewReplayer(*data)
		replaySeed = &data.Seed
		logger.Info("replay loaded", zap.String("path", replayPath), zap.Int("frames", replayer.TotalFrames()))
	}

	seed := resolveSeed(replaySeed, flagSeed, cfg.Generation.Seed, time.Now())
	logger.Info("starting", zap.Int64("seed", seed), zap.Int("tps", cfg.Display.TPS))

	level := system.NewLevel(rand.New(rand.NewSource(seed)), logger.Named("level"))
	opts := playing.Options{RecordPath: recordPath, Seed: seed, Replay: replayer}
	start := generating.New(level, cfg.Generation, func(l *system.Level) scene.Scene {
		return playing.New(l, cfg.Player, opts, logger.Named("playing"))
	}, logger.Named("generating"))

	g := game.New(start, board.ScreenWidth(), board.ScreenHeight(), cfg.Display.TPS, logger)

	ebiten.SetWindowSize(board.ScreenWidth()*cfg.Display.Scale, board.ScreenHeight()*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
