package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rovaughn/termsnake/internal/display"
	"github.com/rovaughn/termsnake/internal/loop"
	"github.com/rovaughn/termsnake/internal/snake"
	"github.com/rovaughn/termsnake/internal/sound"
)

var (
	backendFlag = flag.String("backend", display.BackendTcell, "display backend: tcell or ansi")
	tickFlag    = flag.Duration("tick", loop.DefaultTick, "time between moves")
	widthFlag   = flag.Int("width", snake.DefaultWidth, "board width including the wall")
	heightFlag  = flag.Int("height", snake.DefaultHeight, "board height including the wall")
	seedFlag    = flag.Uint64("seed", 0, "food placement seed (0 picks one from the clock)")
	soundFlag   = flag.Bool("sound", false, "play sound cues")
	debugFlag   = flag.Bool("debug", false, "write a debug log to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	session := uuid.NewString()
	logFile, err := setupLogging(logDir, *debugFlag, session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("session %s: backend=%s seed=%d", session, *backendFlag, seed)

	game, err := snake.New(snake.Config{Width: *widthFlag, Height: *heightFlag}, snake.NewRand(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	disp, err := display.New(*backendFlag, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
		return 1
	}

	opts := []loop.Option{
		loop.WithTick(*tickFlag),
		loop.WithLogger(logger),
	}
	if *soundFlag {
		player, err := sound.New(logger)
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("audio disabled: %v", err)
		}
		defer player.Close()
		opts = append(opts, loop.WithListener(player))
	}

	res, err := loop.New(game, disp, opts...).Run()
	if err != nil {
		var aerr *loop.AcquireError
		if errors.As(err, &aerr) {
			fmt.Fprintf(os.Stderr, "termsnake: %v\n", err)
			return 1
		}
		logger.Printf("run: %v", err)
	}

	report(os.Stdout, res)
	return 0
}

func report(w io.Writer, res loop.Result) {
	fmt.Fprintf(w, "\nGame Over!\n")
	fmt.Fprintf(w, "Your final score: %d\n", res.Score)
	fmt.Fprintf(w, "Thanks for playing!\n")
}
