package main

import (
	"strings"
	"testing"
)

func TestReadRooms(t *testing.T) {
	rooms, err := readRooms(strings.NewReader(`[
		{"room_id": 1, "room_type": "Single", "price": 80, "guest_capacity": 1},
		{"room_id": 2, "room_type": "Double", "price": 120, "guest_capacity": 2, "description": "Garden view"}
	]`))
	if err != nil {
		t.Fatalf("readRooms: %v", err)
	}
	if len(rooms) != 2 || rooms[1].Type != "Double" || rooms[1].Capacity != 2 || rooms[1].Description != "Garden view" {
		t.Errorf("rooms = %+v", rooms)
	}

	bad := []string{
		`{"room_id": 1}`,
		`[{"room_type": "Single", "price": 80, "guest_capacity": 1}]`,
		`[{"room_id": 1, "room_type": "Single", "price": -1, "guest_capacity": 1}]`,
		`[{"room_id": 1, "room_type": "Single", "price": 80}]`,
	}
	for _, in := range bad {
		if _, err := readRooms(strings.NewReader(in)); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}
