package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Tajaar/Rag-chat/internal/app"
	"github.com/Tajaar/Rag-chat/internal/config"
	"github.com/Tajaar/Rag-chat/internal/document"
	"github.com/Tajaar/Rag-chat/internal/domain"
	"github.com/Tajaar/Rag-chat/internal/session"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, sessionName string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/ragchat/config.yaml if not provided)")
	flag.StringVar(&sessionName, "session", "", "Session name to persist the transcript under (optional)")
	flag.Parse()

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

	var transcripts *session.Store
	if sessionName != "" {
		transcripts, err = app.NewSessionStore(cfg)
		if err != nil {
			log.Fatalf("failed to open session store: %v", err)
		}
	}

	stdin := bufio.NewScanner(os.Stdin)
	stdin.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	path := flag.Arg(0)
	if path == "" {
		fmt.Print("Enter path to your PDF or TXT document: ")
		if !stdin.Scan() {
			return
		}
		path = strings.TrimSpace(stdin.Text())
	}

	fmt.Println("Processing document...")
	text, err := document.Load(path)
	if err != nil {
		fmt.Printf("Error loading document: %v\n", err)
		os.Exit(1)
	}
	res, err := svc.LoadDocument(text)
	if err != nil {
		var perr *domain.PartialAddError
		if errors.As(err, &perr) {
			fmt.Printf("Warning: only part of the document was indexed (%v). Answers may be incomplete.\n", perr)
		} else {
			fmt.Printf("Error indexing document: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Document split into %d chunks.\n", res.Chunks)
	if res.Summary != "" {
		fmt.Printf("Summary: %s\n", res.Summary)
	}

	fmt.Println("\nYou can now ask questions based on the document.")
	fmt.Println("Type 'exit' to quit.")

	var messages []domain.Message
	for {
		fmt.Print("\nYou: ")
		if !stdin.Scan() {
			break
		}
		question := strings.TrimSpace(stdin.Text())
		if question == "" {
			continue
		}
		if q := strings.ToLower(question); q == "exit" || q == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		answer, err := svc.AskQuestion(question)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("\nAnswer:\n%s\n", answer)

		if transcripts != nil {
			messages = append(messages,
				domain.Message{Role: domain.RoleUser, Content: question},
				domain.Message{Role: domain.RoleAssistant, Content: answer},
			)
			if err := transcripts.Save(sessionName, messages); err != nil {
				fmt.Printf("Warning: could not save session: %v\n", err)
			}
		}
	}
}
