package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Tajaar/Rag-chat/internal/app"
	"github.com/Tajaar/Rag-chat/internal/config"
	"github.com/Tajaar/Rag-chat/internal/document"
	"github.com/Tajaar/Rag-chat/internal/domain"
	"github.com/Tajaar/Rag-chat/internal/session"
	"github.com/Tajaar/Rag-chat/internal/tui"
)

// loadWarning turns an indexing error into a banner line when the index
// stayed queryable; ok reports whether startup may continue. Both entry
// points treat a partial population as degraded, never fatal.
func loadWarning(err error) (warning string, ok bool) {
	if err == nil {
		return "", true
	}
	var perr *domain.PartialAddError
	if errors.As(err, &perr) {
		return fmt.Sprintf("Warning: only part of the document was indexed (%v). Answers may be incomplete.", perr), true
	}
	return "", false
}

func main() {
	_ = godotenv.Load()

	var cfgPath, sessionName string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/ragchat/config.yaml if not provided)")
	flag.StringVar(&sessionName, "session", "", "Session name to persist the transcript under (optional)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Usage: ragchat-tui [--config=config.yaml] [--session=name] document.{txt,pdf}")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	svc, err := app.NewService(cfg)
	if err != nil {
		log.Fatalf("failed to assemble pipeline: %v", err)
	}

	text, err := document.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load document: %v", err)
	}
	res, err := svc.LoadDocument(text)
	warning, ok := loadWarning(err)
	if !ok {
		log.Fatalf("failed to index document: %v", err)
	}

	var transcripts *session.Store
	if sessionName != "" {
		transcripts, err = app.NewSessionStore(cfg)
		if err != nil {
			log.Fatalf("failed to open session store: %v", err)
		}
	}

	summary := fmt.Sprintf("%d chunks indexed.", res.Chunks)
	if warning != "" {
		summary += " " + warning
	}
	if res.Summary != "" {
		summary += " " + res.Summary
	}
	var port tui.TranscriptPort
	if transcripts != nil {
		port = transcripts
	}
	m := tui.New(svc, summary, port, sessionName)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
