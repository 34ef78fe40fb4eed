package catalog

import (
	"sort"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// featuredLimit caps every featured rail at six rooms.
const featuredLimit = 6

// Thresholds for the "top deals" rail.
const (
	dealPriceCap  = 3000
	dealMinRating = 4.3
)

// CityCount pairs a city with how many catalog rooms it holds.
type CityCount struct {
	Name  string
	Count int
}

// PopularCities counts catalog rooms per city, in the given city order.
func PopularCities(rooms []domain.Room, cities []string) []CityCount {
	counts := make([]CityCount, 0, len(cities))
	for _, city := range cities {
		n := 0
		for _, room := range rooms {
			if room.City == city {
				n++
			}
		}
		counts = append(counts, CityCount{Name: city, Count: n})
	}
	return counts
}

// TopDeals returns well-rated budget rooms (price at most 3000, rating at
// least 4.3), cheapest first.
func TopDeals(rooms []domain.Room) []domain.Room {
	deals := make([]domain.Room, 0, featuredLimit)
	for _, room := range rooms {
		if room.Price <= dealPriceCap && room.Rating >= dealMinRating {
			deals = append(deals, room)
		}
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Price < deals[j].Price
	})
	return limit(deals)
}

// LastMinute returns currently available rooms, in catalog order.
func LastMinute(rooms []domain.Room) []domain.Room {
	available := make([]domain.Room, 0, featuredLimit)
	for _, room := range rooms {
		if room.Available {
			available = append(available, room)
		}
	}
	return limit(available)
}

// TopRated returns the best rooms by rating, review count breaking ties.
func TopRated(rooms []domain.Room) []domain.Room {
	rated := make([]domain.Room, len(rooms))
	copy(rated, rooms)
	sort.SliceStable(rated, func(i, j int) bool {
		if rated[i].Rating != rated[j].Rating {
			return rated[i].Rating > rated[j].Rating
		}
		return rated[i].Reviews > rated[j].Reviews
	})
	return limit(rated)
}

// NewListings returns the newest catalog entries. The catalog carries no
// listing date, so catalog order stands in for recency.
func NewListings(rooms []domain.Room) []domain.Room {
	listings := make([]domain.Room, len(rooms))
	copy(listings, rooms)
	return limit(listings)
}

func limit(rooms []domain.Room) []domain.Room {
	if len(rooms) > featuredLimit {
		return rooms[:featuredLimit]
	}
	return rooms
}

// Collection is a curated catalog slice with its membership rule and the
// number of rooms currently matching it.
type Collection struct {
	Name        string
	Description string

	// Membership rule: a room belongs when any configured criterion
	// matches (cities OR price cap OR price floor OR type OR capacity
	// floor).
	Cities      []string
	PriceMax    float64
	PriceMin    float64
	Type        domain.RoomType
	MinCapacity int

	Count int
}

// Collections returns the curated collections with counts computed
// against the current catalog.
func Collections(rooms []domain.Room) []Collection {
	collections := []Collection{
		{
			Name:        "Beach Stays",
			Description: "Coastal escapes near the beach",
			Cities:      []string{"Goa", "Chennai"},
		},
		{
			Name:        "Budget Stays",
			Description: "Quality rooms under ₹2500",
			PriceMax:    2500,
		},
		{
			Name:        "Business Friendly",
			Description: "Perfect for work travelers",
			Cities:      []string{"Mumbai", "Bengaluru", "Delhi", "Hyderabad"},
		},
		{
			Name:        "Luxury Experience",
			Description: "Premium stays for special occasions",
			Type:        domain.RoomTypeSuite,
			PriceMin:    5000,
		},
		{
			Name:        "Heritage Properties",
			Description: "Historic charm meets modern comfort",
			Cities:      []string{"Jaipur", "Delhi"},
		},
		{
			Name:        "Family Friendly",
			Description: "Spacious rooms for families",
			MinCapacity: 3,
		},
	}

	for i := range collections {
		collections[i].Count = countMembers(rooms, collections[i])
	}
	return collections
}

func countMembers(rooms []domain.Room, c Collection) int {
	n := 0
	for _, room := range rooms {
		if isMember(room, c) {
			n++
		}
	}
	return n
}

func isMember(room domain.Room, c Collection) bool {
	for _, city := range c.Cities {
		if room.City == city {
			return true
		}
	}
	if c.PriceMax > 0 && room.Price <= c.PriceMax {
		return true
	}
	if c.PriceMin > 0 && room.Price >= c.PriceMin {
		return true
	}
	if c.Type != "" && room.Type == c.Type {
		return true
	}
	if c.MinCapacity > 0 && room.Capacity >= c.MinCapacity {
		return true
	}
	return false
}
