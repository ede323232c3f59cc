package main

import (
	"flag"
	"fmt"
	"os"

	"hex/config"
	"hex/engine"
	"hex/experiments"
	"hex/game"
	"hex/player"
	"hex/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file (optional)")
	experiment := flag.Bool("experiment", false, "run the depth-to-strength experiment instead of an interactive game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment {
		if err := experiments.RunDepthExperiment(cfg.BoardSize); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := play(cfg); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

// play runs one interactive game: the human plays X unless the AI starts.
func play(cfg *config.Config) error {
	state := game.NewGameState(cfg.BoardSize)
	human := player.NewHuman(os.Stdin, os.Stdout)
	ai := searcher.NewNegamax(
		searcher.WithDepth(cfg.SearchDepth),
		searcher.WithPruning(),
	)

	agents := [2]engine.Agent{human, ai}
	if cfg.AIStarts {
		agents[0], agents[1] = ai, human
	}

	winner, err := engine.Local(state, agents).Run()
	if err != nil {
		return err
	}

	fmt.Print(player.Render(state.Board))
	if winner == game.Empty {
		fmt.Println("Board full: no winner.")
	} else {
		fmt.Printf("Player %s wins!\n", winner)
	}
	return nil
}
