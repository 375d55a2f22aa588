package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/turnwheel/turnwheel/pkg/engine"
	"github.com/turnwheel/turnwheel/pkg/games/tictactoe"
	"github.com/turnwheel/turnwheel/pkg/log"
)

type config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(fmt.Sprintf("Failed to parse environment: %v", err))
	}
	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel))

	host := tictactoe.NewHost(tictactoe.NewGame())
	co, err := host.Play()
	if err != nil {
		log.Error("Failed to start game: %v", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var input tictactoe.Pos
	for {
		turn, err := co.Resume(input)
		if err != nil {
			log.Error("Failed to resume game: %v", err)
			os.Exit(1)
		}
		if turn.Done {
			render(host)
			fmt.Println(turn.Outcome)
			return
		}

		if turn.Event.Rejected {
			fmt.Println("Invalid move, try again.")
		} else {
			render(host)
			fmt.Printf("%s to move.\n", turn.Event.Next)
		}
		input = readMove(scanner)
	}
}

// readMove prompts until the player enters an in-bounds "col row" pair.
func readMove(scanner *bufio.Scanner) tictactoe.Pos {
	for {
		fmt.Print("Enter move as 'col row' (0-2): ")
		if !scanner.Scan() {
			fmt.Println("No more input, exiting.")
			os.Exit(0)
		}
		var col, row int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &col, &row); err != nil {
			fmt.Println("Could not read a move from that, try again.")
			continue
		}
		pos, err := tictactoe.NewPos(col, row)
		if err != nil {
			fmt.Println("That position is off the board, try again.")
			continue
		}
		return pos
	}
}

// render prints the current board, row 0 at the top.
func render(host *engine.Host[tictactoe.Game, tictactoe.Event, tictactoe.Pos, tictactoe.Outcome]) {
	game := host.Game()
	for row := 0; row < tictactoe.BoardSize; row++ {
		if row > 0 {
			fmt.Println("---+---+---")
		}
		for col := 0; col < tictactoe.BoardSize; col++ {
			if col > 0 {
				fmt.Print("|")
			}
			pos, _ := tictactoe.NewPos(col, row)
			fmt.Printf(" %s ", game.Tile(pos))
		}
		fmt.Println()
	}
}
