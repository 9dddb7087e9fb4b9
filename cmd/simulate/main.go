// Command simulate loads two units, runs a duel between them and archives the
// resolution log.
//
//	simulate [-seed N] [-turns N] [-title T] [-no-archive] a.mtf b.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/battlecore/internal/bvcalc"
	"github.com/JustinWhittecar/battlecore/internal/config"
	"github.com/JustinWhittecar/battlecore/internal/db"
	"github.com/JustinWhittecar/battlecore/internal/dice"
	"github.com/JustinWhittecar/battlecore/internal/ingestion"
	"github.com/JustinWhittecar/battlecore/internal/phase"
	"github.com/JustinWhittecar/battlecore/internal/sim"
	"github.com/JustinWhittecar/battlecore/internal/unit"
	"github.com/JustinWhittecar/battlecore/internal/unitdef"
)

// ─── Loading ────────────────────────────────────────────────────────────────

// loadUnit reads a MegaMek .mtf file or a YAML unit definition.
func loadUnit(path string) (*unit.Unit, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mtf":
		return ingestion.LoadMek(path)
	case ".yaml", ".yml":
		return unitdef.Load(path)
	default:
		return nil, fmt.Errorf("%s: unsupported unit file", path)
	}
}

func openArchive(ctx context.Context, logger zerolog.Logger) (db.Archive, error) {
	cfg, err := config.ArchiveConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == "postgres" {
		return db.ConnectPostgres(ctx, cfg.PostgresURL, logger)
	}
	sqlDB, err := db.ConnectArchiveDB(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return db.NewSQLiteArchive(sqlDB, logger), nil
}

// ─── Main ───────────────────────────────────────────────────────────────────

func main() {
	configDir := flag.String("config", ".", "directory holding battlecore.yaml")
	seedFlag := flag.Int64("seed", -1, "dice seed (default from config, 0 picks one)")
	turnsFlag := flag.Int("turns", 0, "turn limit (default from config)")
	title := flag.String("title", "", "archive title (default \"A vs B\")")
	noArchive := flag.Bool("no-archive", false, "skip saving the resolution")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: simulate [flags] <unit-a> <unit-b>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := config.Load(*configDir); err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("loading config")
	}
	logger := config.NewLogger(os.Stderr)

	seed := config.GetInt64("sim.seed")
	if *seedFlag >= 0 {
		seed = *seedFlag
	}
	var roller *dice.Roller
	if seed == 0 {
		roller = dice.NewSeeded(uint64(os.Getpid()))
	} else {
		roller = dice.NewSeeded(uint64(seed))
	}
	turns := config.GetInt("sim.turns")
	if *turnsFlag > 0 {
		turns = *turnsFlag
	}

	a, err := loadUnit(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("loading first unit")
	}
	b, err := loadUnit(flag.Arg(1))
	if err != nil {
		logger.Fatal().Err(err).Msg("loading second unit")
	}
	if a.ID == "" {
		a.ID = "A"
	}
	if b.ID == "" || b.ID == a.ID {
		b.ID = "B"
	}

	game, err := phase.New(roller, phase.WithLogger(logger), phase.WithRules(config.Rules()))
	if err != nil {
		logger.Fatal().Err(err).Msg("creating game")
	}
	duel, err := sim.NewDuel(game, a, b, sim.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("creating duel")
	}

	res := duel.Run(turns)

	// ─── Summary ────────────────────────────────────────────────────────────

	fmt.Printf("%s vs %s: %d turns, %d reports\n", a.Name, b.Name, res.Turns, len(game.Log.Reports))
	for _, u := range []*unit.Unit{a, b} {
		state := "operational"
		if !u.Alive() {
			state = "destroyed (" + u.DestroyedBy + ")"
		}
		fmt.Printf("  %-30s BV %5d  %s\n", u.Name, bvcalc.Estimate(u), state)
	}
	if res.Winner != nil {
		fmt.Printf("Winner: %s\n", res.Winner.Name)
	} else {
		fmt.Println("Draw")
	}

	if *noArchive {
		return
	}
	if *title == "" {
		*title = a.Name + " vs " + b.Name
	}

	ctx := context.Background()
	archive, err := openArchive(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open archive")
	}
	defer archive.Close()

	rec := duel.Resolution(*title, seed, res)
	if err := archive.Save(ctx, rec); err != nil {
		logger.Error().Err(err).Msg("saving resolution")
		return
	}
	fmt.Printf("Archived as %s\n", rec.ID)
}
