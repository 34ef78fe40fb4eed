package catalog_test

import (
	"testing"

	"github.com/staynestapp/staynest-client/internal/catalog"
	"github.com/staynestapp/staynest-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDeals(t *testing.T) {
	rooms := []domain.Room{
		{ID: "pricey", Price: 6000, Rating: 4.9},
		{ID: "cheap-good", Price: 2000, Rating: 4.6},
		{ID: "cheap-bad", Price: 1800, Rating: 4.1},
		{ID: "edge", Price: 3000, Rating: 4.3},
		{ID: "cheapest", Price: 1200, Rating: 4.6},
	}

	got := catalog.TopDeals(rooms)

	// Both thresholds are inclusive; results come cheapest first.
	assert.Equal(t, []string{"cheapest", "cheap-good", "edge"}, roomIDs(got))
}

func TestTopDeals_CapsAtSix(t *testing.T) {
	var rooms []domain.Room
	for i := 0; i < 10; i++ {
		rooms = append(rooms, domain.Room{ID: string(rune('a' + i)), Price: 1000, Rating: 4.5})
	}

	assert.Len(t, catalog.TopDeals(rooms), 6)
}

func TestTopRated(t *testing.T) {
	rooms := []domain.Room{
		{ID: "a", Rating: 4.5, Reviews: 100},
		{ID: "b", Rating: 4.8, Reviews: 50},
		{ID: "c", Rating: 4.5, Reviews: 900},
	}

	got := catalog.TopRated(rooms)

	// Rating descends; review count breaks the tie.
	assert.Equal(t, []string{"b", "c", "a"}, roomIDs(got))
	// The input order is untouched.
	assert.Equal(t, "a", rooms[0].ID)
}

func TestLastMinute_OnlyAvailable(t *testing.T) {
	rooms := []domain.Room{
		{ID: "a", Available: true},
		{ID: "b", Available: false},
		{ID: "c", Available: true},
	}

	assert.Equal(t, []string{"a", "c"}, roomIDs(catalog.LastMinute(rooms)))
}

func TestPopularCities(t *testing.T) {
	rooms := []domain.Room{
		{City: "Goa"}, {City: "Goa"}, {City: "Mumbai"},
	}

	got := catalog.PopularCities(rooms, []string{"Goa", "Mumbai", "Delhi"})

	require.Len(t, got, 3)
	assert.Equal(t, catalog.CityCount{Name: "Goa", Count: 2}, got[0])
	assert.Equal(t, catalog.CityCount{Name: "Mumbai", Count: 1}, got[1])
	assert.Equal(t, catalog.CityCount{Name: "Delhi", Count: 0}, got[2])
}

func TestCollections_Membership(t *testing.T) {
	rooms := []domain.Room{
		{ID: "goa-hut", City: "Goa", Price: 1200, Type: domain.RoomTypeStandard, Capacity: 2},
		{ID: "delhi-suite", City: "Delhi", Price: 5500, Type: domain.RoomTypeSuite, Capacity: 4},
		{ID: "jaipur-villa", City: "Jaipur", Price: 9500, Type: domain.RoomTypePresidential, Capacity: 6},
		{ID: "blr-deluxe", City: "Bengaluru", Price: 3200, Type: domain.RoomTypeDeluxe, Capacity: 2},
	}

	byName := map[string]catalog.Collection{}
	for _, c := range catalog.Collections(rooms) {
		byName[c.Name] = c
	}

	assert.Equal(t, 1, byName["Beach Stays"].Count)
	assert.Equal(t, 1, byName["Budget Stays"].Count)
	assert.Equal(t, 2, byName["Business Friendly"].Count)
	// Luxury admits suites of any price and any room at 5000 or more.
	assert.Equal(t, 2, byName["Luxury Experience"].Count)
	assert.Equal(t, 2, byName["Heritage Properties"].Count)
	assert.Equal(t, 2, byName["Family Friendly"].Count)
}

func TestCollections_CheapSuiteIsStillLuxury(t *testing.T) {
	rooms := []domain.Room{
		{ID: "cheap-suite", City: "Pune", Price: 2000, Type: domain.RoomTypeSuite},
	}

	for _, c := range catalog.Collections(rooms) {
		if c.Name == "Luxury Experience" {
			assert.Equal(t, 1, c.Count)
			return
		}
	}
	t.Fatal("Luxury Experience collection missing")
}
