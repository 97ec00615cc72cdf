package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hotel-assistant/internal/agent/orchestrator"
	"hotel-assistant/internal/bootstrap"
)

var chatSessionID string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant in the terminal",
	Long: `Starts an interactive conversation with the assistant.

Type /reset to start over and /exit (or Ctrl-D) to quit. Pass --session to
resume a conversation kept in the configured session store.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatSessionID, "session", "", "session id to resume")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	loc := bootstrap.Location(ctx, logger, cfg)

	dbs, err := bootstrap.OpenDatabases(ctx, logger, cfg.Database)
	if err != nil {
		return err
	}
	defer dbs.Close()

	llm, err := bootstrap.NewLLM(logger, cfg)
	if err != nil {
		return err
	}
	knowledgeStore, err := bootstrap.NewKnowledgeStore(logger, cfg)
	if err != nil {
		return err
	}
	sessionStore, closeStore, err := bootstrap.NewConversationStore(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier := bootstrap.NewDirectNotifier(ctx, logger, cfg)
	assistant, err := bootstrap.NewAssistant(ctx, logger, cfg, bootstrap.AssistantDeps{
		LLM:       llm,
		Databases: dbs,
		Searcher:  knowledgeStore,
		Booking:   bootstrap.NewBookingUseCase(logger, dbs, notifier, loc, cfg),
		Store:     sessionStore,
		Location:  loc,
	})
	if err != nil {
		return err
	}

	sessionID := chatSessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return chatLoop(cmd, assistant, sessionID, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Hotel.AssistantName)
}

// chatLoop reads one utterance per line until EOF or /exit.
func chatLoop(cmd *cobra.Command, assistant *orchestrator.Orchestrator, sessionID string, in io.Reader, out io.Writer, name string) error {
	ctx := commandContext(cmd)
	fmt.Fprintf(out, "%s: %s\n", name, assistant.Greeting())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/exit", "/quit":
			return nil
		case "/reset":
			assistant.Reset(ctx, sessionID)
			sessionID = uuid.NewString()
			fmt.Fprintf(out, "%s: %s\n", name, assistant.Greeting())
			continue
		}

		reply := assistant.Handle(ctx, sessionID, line)
		fmt.Fprintf(out, "%s: %s\n", name, reply.Text)
		if verbose {
			fmt.Fprintf(out, "  [intent=%s mode=%s degraded=%t]\n", reply.Intent, reply.Mode, reply.Degraded)
		}
	}
}
