package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hotel-assistant/internal/booking"
	"hotel-assistant/internal/booking/repository/sqlstore"
	"hotel-assistant/internal/bootstrap"
	"hotel-assistant/internal/knowledge"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load rooms or knowledge passages",
}

var seedKnowledgeCmd = &cobra.Command{
	Use:   "knowledge <file.json>",
	Short: "Embed and index knowledge passages",
	Long: `Reads a JSON array of {"id", "text", "source"} passages, embeds them with the
configured embedder and upserts them into the configured knowledge backend.
Passages without an id are keyed by their content.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeedKnowledge,
}

var seedRoomsCmd = &cobra.Command{
	Use:   "rooms <file.json>",
	Short: "Insert or update the room catalogue",
	Long: `Reads a JSON array of {"room_id", "room_type", "price", "guest_capacity",
"description"} objects and upserts them into the rooms table.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeedRooms,
}

func init() {
	seedCmd.AddCommand(seedKnowledgeCmd, seedRoomsCmd)
	rootCmd.AddCommand(seedCmd)
}

func runSeedKnowledge(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	docs, err := knowledge.ReadDocuments(f)
	if err != nil {
		return err
	}

	store, err := bootstrap.NewKnowledgeStore(logger, cfg)
	if err != nil {
		return err
	}
	if err := store.Upsert(ctx, docs); err != nil {
		return fmt.Errorf("upsert passages: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d passages into %s\n", len(docs), cfg.Knowledge.Backend)
	return nil
}

type roomRecord struct {
	ID          int     `json:"room_id"`
	Type        string  `json:"room_type"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"guest_capacity"`
	Description string  `json:"description"`
}

// readRooms decodes and checks a room catalogue.
func readRooms(r io.Reader) ([]booking.Room, error) {
	var records []roomRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]booking.Room, 0, len(records))
	for i, rec := range records {
		if rec.ID <= 0 || rec.Type == "" || rec.Capacity <= 0 || rec.Price < 0 {
			return nil, fmt.Errorf("room %d: id, type, capacity and a non-negative price are required", i)
		}
		rooms = append(rooms, booking.Room{
			ID:          rec.ID,
			Type:        rec.Type,
			Price:       rec.Price,
			Capacity:    rec.Capacity,
			Description: rec.Description,
		})
	}
	return rooms, nil
}

func runSeedRooms(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	rooms, err := readRooms(f)
	if err != nil {
		return err
	}

	dbs, err := bootstrap.OpenDatabases(ctx, logger, cfg.Database)
	if err != nil {
		return err
	}
	defer dbs.Close()

	repo := sqlstore.New(dbs.Main, dbs.Dialect, logger)
	for _, room := range rooms {
		if err := repo.UpsertRoom(ctx, room); err != nil {
			return fmt.Errorf("room %d: %w", room.ID, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d rooms\n", len(rooms))
	return nil
}
