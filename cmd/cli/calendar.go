package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"hotel-assistant/pkg/gcalendar"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Google Calendar helpers for reservation sync",
}

var calendarAuthCmd = &cobra.Command{
	Use:   "auth [credentials.json]",
	Short: "Authorize a desktop OAuth client and write token.json",
	Long: `Service accounts need no token. For OAuth desktop credentials, run this once:
it prints a consent URL, reads the authorization code you paste back and
saves token.json next to the server, which reads it at start-up.
Without an argument the file named by google_calendar.credentials_path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendarAuth,
}

func init() {
	calendarCmd.AddCommand(calendarAuthCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendarAuth(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	var credsPath string
	if len(args) > 0 {
		credsPath = args[0]
	} else {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		credsPath = cfg.GoogleCalendar.CredentialsPath
	}
	if credsPath == "" {
		return fmt.Errorf("no credentials file: pass one or set google_calendar.credentials_path")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}
	conf, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("%q is not an OAuth desktop credentials file: %w", credsPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with the hotel's Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, conf.AuthCodeURL("hotel-assistant", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(gcalendar.TokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create %s: %w", gcalendar.TokenFile, err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", gcalendar.TokenFile, err)
	}

	fmt.Fprintf(out, "\nSaved %s. Restart the API server to enable calendar sync.\n", gcalendar.TokenFile)
	return nil
}
