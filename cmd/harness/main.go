package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/younwookim/hiddenui/internal/application/game"
	"github.com/younwookim/hiddenui/internal/application/input"
	"github.com/younwookim/hiddenui/internal/application/replay"
	"github.com/younwookim/hiddenui/internal/application/scene/harness"
	"github.com/younwookim/hiddenui/internal/ecs"
	"github.com/younwookim/hiddenui/internal/infrastructure/asset"
	"github.com/younwookim/hiddenui/internal/infrastructure/config"
	"github.com/younwookim/hiddenui/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

func main() {
	os.Exit(run())
}

func run() int {
	configFlag := flag.String("config", "", "Display config file (.yaml, .toml or .json); embedded default if empty")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play input back from a recorded file")
	verifyFlag := flag.Bool("verify", false, "Run the -replay file without a window and check the render set")
	profileFlag := flag.String("profile", "", "Write a profile to the working directory (cpu or mem)")
	flag.Parse()

	// Configuration errors are fatal before any frame runs
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if *profileFlag != "" {
		mode, err := profileMode(*profileFlag)
		if err != nil {
			log.Error("invalid -profile", zap.Error(err))
			return 1
		}
		defer profile.Start(mode, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	var source input.Source = input.NewEbitenSource()
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Error("failed to load replay", zap.String("file", *replayFlag), zap.Error(err))
			return 1
		}
		replayer = replay.NewReplayer(*data)
		source = replayer
		log.Info("replaying", zap.String("file", *replayFlag), zap.Int("frames", replayer.TotalFrames()))
	}

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder()
		log.Info("recording enabled", zap.String("file", *recordFlag))
	}

	ctx := harness.Context{
		World:  ecs.NewWorld(),
		Assets: asset.NewCache(cfg.Assets.Dir, log.Named("asset")),
		Log:    log.Named("harness"),
	}
	loop := harness.New(ctx, cfg, source, recorder)

	if *verifyFlag {
		if replayer == nil {
			log.Error("-verify requires -replay")
			return 1
		}
		report, err := harness.Verify(loop, replayer.TotalFrames())
		if err != nil {
			log.Error("verification failed", zap.Error(err))
			return 1
		}
		log.Info("verification passed",
			zap.Int("frames", report.Frames),
			zap.Int("entities", report.Entities),
			zap.Int("renderSet", report.RenderSet),
			zap.Int("spawned", report.Spawned),
			zap.Stringer("state", report.State))
		return 0
	}

	d := cfg.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)
	ebiten.SetWindowClosingHandled(true)

	g := game.New(loop, d.ScreenWidth, d.ScreenHeight)
	g.SetDT(1.0 / float64(d.Framerate))

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Error("failed to save recording", zap.Error(err))
		} else {
			log.Info("recording saved", zap.String("file", *recordFlag), zap.Int("frames", recorder.FrameCount()))
		}
	}

	if runErr != nil {
		log.Error("game loop failed", zap.Error(runErr))
		return 1
	}
	return 0
}

// loadConfig reads the config file at path, or the embedded default
func loadConfig(path string) (*config.HarnessConfig, error) {
	if path == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("config subfs: %w", err)
		}
		return config.NewFSLoader(fsys, "configs").Load("display.yaml")
	}
	return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

func profileMode(name string) (func(*profile.Profile), error) {
	switch name {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", name)
	}
}
