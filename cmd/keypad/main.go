package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"gridwalk/internal/config"
	"gridwalk/internal/input"
	"gridwalk/internal/keypad"
)

func main() {
	pad := flag.String("pad", "standard", "keypad layout: standard or diamond")
	start := flag.String("start", "5", "key the finger starts on")
	show := flag.Bool("show", false, "draw the keypad after each key")
	flag.Parse()

	log := config.Load().Logger(os.Stderr)

	if flag.NArg() != 1 {
		log.Fatal().Msgf("usage: %s [flags] <input file|->", os.Args[0])
	}
	k, ok := keypad.ByName(*pad)
	if !ok {
		log.Fatal().Str("pad", *pad).Msg("unknown keypad")
	}
	startKey, size := utf8.DecodeRuneInString(*start)
	if size == 0 || size != len(*start) {
		log.Fatal().Str("start", *start).Msg("start must be a single key")
	}

	data, err := input.Read(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("unable to read input")
	}
	lines, err := keypad.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to parse instructions")
	}

	code, err := k.Code(startKey, lines)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to derive code")
	}

	if *show {
		pos, _ := k.Find(startKey)
		for _, line := range lines {
			pos = k.Press(pos, line)
			fmt.Println(k.Render(pos))
		}
	}
	fmt.Printf("Keys: %s\n", code)
}
