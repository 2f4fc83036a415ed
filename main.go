package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"invaders/config"
	"invaders/data"
	"invaders/headless"
	"invaders/systems"
	"invaders/tty"
)

func main() {
	fs := flag.NewFlagSet("invaders", flag.ExitOnError)
	envFile := fs.String("env", ".env", "optional env file with INVADERS_* settings")
	templates := fs.String("templates", "", "directory of JSON archetype templates")
	terminal := fs.Bool("tty", false, "play in the terminal")
	ticks := fs.Int("headless", 0, "run this many ticks without a display")
	out := fs.String("out", "", "headless: write MessagePack frames to this file (- for stdout)")
	stride := fs.Int("stride", 1, "headless: write every n-th frame")
	fireEvery := fs.Uint64("fire-every", 20, "headless: ticks between autopilot volleys")
	prof := fs.String("profile", "", "headless: cpu or mem")
	overrides := config.BindFlags(fs)
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(*envFile, overrides)
	if err != nil {
		log.Fatal(err)
	}

	archetypes := data.NewArchetypeManager()
	if *templates != "" {
		if err := archetypes.LoadTemplatesFromDirectory(*templates); err != nil {
			log.Fatalf("Failed to load archetype templates: %v", err)
		}
	}

	switch {
	case *ticks > 0:
		if err := runHeadless(cfg, archetypes, *ticks, *out, *stride, *fireEvery, *prof); err != nil {
			log.Fatal(err)
		}
	case *terminal:
		game, err := tty.NewGame(cfg, archetypes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer game.Close()
		game.Run()
	default:
		windowWidth, windowHeight := config.GetWindowSize(cfg)
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle(config.WindowTitle)
		ebiten.SetTPS(cfg.TickRate)
		if err := ebiten.RunGame(NewGame(cfg, archetypes)); err != nil {
			log.Fatal(err)
		}
	}
}

func runHeadless(cfg *config.Config, archetypes *data.ArchetypeManager, ticks int, out string, stride int, fireEvery uint64, prof string) error {
	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", prof)
	}

	// headless.Run flushes the buffered writer, so a short write is an error
	var w io.Writer
	var file *os.File
	switch out {
	case "":
	case "-":
		w = bufio.NewWriter(os.Stdout)
	default:
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating frame file: %w", err)
		}
		defer f.Close()
		file = f
		w = bufio.NewWriter(f)
	}

	sim := systems.NewSimulation(cfg, archetypes)
	defer sim.Close()

	sum, err := headless.Run(sim, headless.Options{
		Ticks:  ticks,
		Pilot:  headless.Autopilot{FireEvery: fireEvery},
		Out:    w,
		Stride: stride,
	})
	if err != nil {
		return err
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return fmt.Errorf("closing frame file: %w", err)
		}
	}
	log.Printf("ran %d ticks: score %d, kills %d, deaths %d, frames %d",
		sum.Ticks, sum.FinalScore, sum.Kills, sum.Deaths, sum.Frames)
	return nil
}
