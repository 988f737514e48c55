package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"gridwalk/internal/config"
	"gridwalk/internal/grid"
	"gridwalk/internal/input"
	"gridwalk/internal/moves"
)

var errNoRevisit = errors.New("no point visited twice")

func main() {
	revisit := flag.Bool("revisit", false, "report the first location visited twice")
	trace := flag.Bool("trace", false, "log every state of the walk, one per cell with -revisit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input file|->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Load()
	log := cfg.Logger(os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := input.Read(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to read input")
	}
	ms, err := moves.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to parse moves")
	}
	log.Debug().Int("moves", len(ms)).Msg("parsed")

	if *trace {
		traceWalk(log.Level(zerolog.DebugLevel), ms, *revisit)
	}

	distance := grid.Distance(ms)
	if *revisit {
		d, ok := grid.RevisitDistance(ms)
		if !ok {
			log.Fatal().Err(errNoRevisit).Msg("no revisit")
		}
		distance = d
	}
	fmt.Printf("Distance: %d\n", distance)
}

// traceWalk logs every state of the walk. With unit set it logs one state
// per cell entered, the way the revisit search walks.
func traceWalk(log zerolog.Logger, ms []grid.Move, unit bool) {
	s := grid.Start()
	for _, m := range ms {
		if unit {
			s = s.Steps(m, func(next grid.State) bool {
				log.Debug().Stringer("move", m).Stringer("state", next).Msg("step")
				return true
			})
			continue
		}
		s = s.Apply(m)
		log.Debug().Stringer("move", m).Stringer("state", s).Msg("step")
	}
}
