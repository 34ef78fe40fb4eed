// Package main generates the data store's db.json from the bundled room
// catalog.
//
// Usage:
//
//	go run ./cmd/seed                # writes ./db.json
//	go run ./cmd/seed -out path.json
//
// The output is the document a json-server style store serves: the seeded
// rooms plus empty users, bookings and favorites collections. Room ids are
// assigned deterministically from catalog position, so reseeding the same
// catalog yields the same ids.
package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/staynestapp/staynest-client/internal/domain"
)

//go:embed rooms.json
var roomsData []byte

var outPath = flag.String("out", "db.json", "Path to write the store document")

type storeDocument struct {
	Rooms     []domain.Room     `json:"rooms"`
	Users     []domain.User     `json:"users"`
	Bookings  []domain.Booking  `json:"bookings"`
	Favorites []domain.Favorite `json:"favorites"`
}

func main() {
	flag.Parse()

	var rooms []domain.Room
	if err := json.Unmarshal(roomsData, &rooms); err != nil {
		log.Fatalf("Failed to parse bundled catalog: %v", err)
	}

	for i := range rooms {
		rooms[i].ID = fmt.Sprintf("room-%d", i+1)
	}

	doc := storeDocument{
		Rooms:     rooms,
		Users:     []domain.User{},
		Bookings:  []domain.Booking{},
		Favorites: []domain.Favorite{},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode store document: %v", err)
	}

	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}

	fmt.Printf("Wrote %d rooms to %s\n", len(rooms), *outPath)
}
