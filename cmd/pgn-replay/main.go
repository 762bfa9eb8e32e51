// pgn-replay validates PGN files by replaying every game through the move
// engine, reporting the final position of each. It doubles as a perft
// driver for move generator verification.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/chess"
	"github.com/lgbarn/chesscore-go/pgn"
)

const programVersion = "0.1.0"

var (
	version    = flag.Bool("version", false, "print the version and exit")
	quiet      = flag.Bool("quiet", false, "suppress per-game FEN output")
	svgFile    = flag.String("svg", "", "write the final position of the last game as SVG")
	perftDepth = flag.Int("perft", 0, "run perft to the given depth instead of replaying")
	perftFEN   = flag.String("fen", "", "position for -perft (default: the variant's start)")
	variantKey = flag.String("variant", "standard", "variant for -perft")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("pgn-replay version %s\n", programVersion)
		os.Exit(0)
	}

	if *perftDepth > 0 {
		os.Exit(runPerft())
	}

	exitCode := 0
	var lastFinal *chess.Position
	for _, src := range readSources() {
		games, err := pgn.ParseAll(src.text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", src.name, err)
			exitCode = 1
		}
		for i, g := range games {
			replay, err := pgn.ReplayGame(g)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: game %d: %v\n", src.name, i+1, err)
				exitCode = 1
				continue
			}
			final := replay.Final()
			lastFinal = &final
			if !*quiet {
				fmt.Printf("%s\n", final.FEN())
			}
		}
	}

	if *svgFile != "" && lastFinal != nil {
		if err := writeSVG(*svgFile, lastFinal.Board); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

type source struct {
	name string
	text string
}

// readSources loads the input files named on the command line, or stdin
// when none are given.
func readSources() []source {
	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading stdin: %v\n", err)
			os.Exit(1)
		}
		return []source{{name: "stdin", text: string(data)}}
	}
	var sources []source
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		sources = append(sources, source{name: name, text: string(data)})
	}
	return sources
}

func runPerft() int {
	v, ok := chess.VariantByKey(*variantKey)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", *variantKey)
		return 1
	}
	pos := chess.NewPosition(v)
	if *perftFEN != "" {
		var err error
		pos, err = chess.PositionFromFEN(*perftFEN, v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}
	for d := 0; d <= *perftDepth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, chess.Perft(pos, d))
	}
	return 0
}

func writeSVG(path string, b chess.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	chess.WriteSVG(f, b)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pgn-replay [options] [file.pgn ...]

Replays every game in the given PGN files (or stdin) and prints the final
FEN of each. Errors are reported per game without stopping the run.

Options:
`)
	flag.PrintDefaults()
}
