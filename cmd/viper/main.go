package main

import (
	"fmt"
	"os"

	"github.com/Mshel/viper/internal/game"
	"github.com/Mshel/viper/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const defaultScoresPath = "viper_scores.db"

func main() {
	scoresPath := os.Getenv("VIPER_DB_PATH")
	if scoresPath == "" {
		scoresPath = defaultScoresPath
	}

	scores, err := game.NewScoreService(scoresPath)
	if err != nil {
		log.Error("scores database unavailable, playing without persistence", "path", scoresPath, "error", err)
		scores = nil
	} else {
		defer scores.Close()
	}

	cfg := game.DefaultConfig()
	if pilotPath := os.Getenv("VIPER_PILOT_SCRIPT"); pilotPath != "" {
		script, err := os.ReadFile(pilotPath)
		if err != nil {
			log.Fatal("could not read pilot script", "path", pilotPath, "error", err)
		}
		cfg.PilotScript = string(script)
	}

	p := tea.NewProgram(ui.NewControllerModel(cfg, scores, 80, 24), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
