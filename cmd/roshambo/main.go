package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/turnwheel/turnwheel/pkg/games/roshambo"
	"github.com/turnwheel/turnwheel/pkg/journal"
	"github.com/turnwheel/turnwheel/pkg/log"
	"github.com/turnwheel/turnwheel/pkg/version"
)

func main() {
	player1 := flag.String("player1", "rock", "Player 1's choice (rock, paper, scissors)")
	player2 := flag.String("player2", "scissors", "Player 2's choice (rock, paper, scissors)")
	journalPath := flag.String("journal", "", "Write the recorded event journal to this file")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetDefaultLogger(log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel))

	log.Debug("Starting roshambo version %s", version.Get())

	choice1, err := roshambo.ParseChoice(*player1)
	if err != nil {
		log.Error("Failed to parse player 1's choice: %v", err)
		os.Exit(1)
	}
	choice2, err := roshambo.ParseChoice(*player2)
	if err != nil {
		log.Error("Failed to parse player 2's choice: %v", err)
		os.Exit(1)
	}

	host := roshambo.NewHost(roshambo.Game{Player1: choice1, Player2: choice2})
	co, err := host.Play()
	if err != nil {
		log.Error("Failed to start game: %v", err)
		os.Exit(1)
	}

	recorder := journal.NewRecorder[roshambo.Msg]()
	for {
		turn, err := co.Resume(struct{}{})
		if err != nil {
			log.Error("Failed to resume game: %v", err)
			os.Exit(1)
		}
		if turn.Done {
			fmt.Printf("Outcome: %s\n", turn.Outcome)
			break
		}
		fmt.Println(turn.Event)
		if err := recorder.Record(turn.Event); err != nil {
			log.Warn("Failed to record event: %v", err)
		}
	}

	if *journalPath == "" {
		return
	}
	f, err := os.Create(*journalPath)
	if err != nil {
		log.Error("Failed to create journal file: %v", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := journal.Export(f, recorder.Entries()); err != nil {
		log.Error("Failed to export journal: %v", err)
		os.Exit(1)
	}
	log.Info("Wrote %d journal entries to %s", len(recorder.Entries()), *journalPath)
}
