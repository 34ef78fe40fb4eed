// Package catalog derives the visible room list from the raw catalog. All
// derivations are pure functions: any change to the query, city, filters,
// sort key, or catalog triggers a full recompute, and the input slice is
// never mutated.
package catalog

import (
	"sort"
	"strings"

	"github.com/staynestapp/staynest-client/internal/domain"
)

// AllCities is the city filter sentinel that matches every room.
const AllCities = "All Cities"

// FilterAll is the sentinel for room-type and bed-type filters that
// matches every room.
const FilterAll = "all"

// SortKey selects the ordering of the visible room list.
type SortKey string

// Supported sort keys.
const (
	// SortRecommended keeps the catalog's original order.
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortPopularity  SortKey = "popularity"
)

// Filters holds the structured filter criteria from the sidebar.
type Filters struct {
	// PriceMin and PriceMax bound the room price inclusively.
	PriceMin float64
	PriceMax float64
	// Rating is the minimum rating threshold.
	Rating float64
	// RoomType matches exactly, or FilterAll.
	RoomType string
	// BedType matches exactly; empty and FilterAll both match everything.
	BedType string
}

// DefaultFilters returns the open filter set the sidebar starts with.
func DefaultFilters() Filters {
	return Filters{
		PriceMin: 0,
		PriceMax: 10000,
		Rating:   0,
		RoomType: FilterAll,
		BedType:  FilterAll,
	}
}

// Apply derives the visible list: filter by query, city, and structured
// filters, then order by sortKey. Sorting is stable, so rooms with equal
// keys keep their catalog-relative order.
func Apply(rooms []domain.Room, query, city string, filters Filters, sortKey SortKey) []domain.Room {
	visible := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if Matches(room, query, city, filters) {
			visible = append(visible, room)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price < visible[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Price > visible[j].Price
		})
	case SortRating:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Rating > visible[j].Rating
		})
	case SortPopularity:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Reviews > visible[j].Reviews
		})
	default:
		// SortRecommended: catalog order unchanged.
	}

	return visible
}

// Matches reports whether a single room satisfies every predicate: the
// case-insensitive substring query over name, location, and description
// (empty query always matches), the city selection, the inclusive price
// range, the minimum rating, and the room-type and bed-type selections.
func Matches(room domain.Room, query, city string, filters Filters) bool {
	if !matchesQuery(room, query) {
		return false
	}
	if city != AllCities && room.City != city {
		return false
	}
	if room.Price < filters.PriceMin || room.Price > filters.PriceMax {
		return false
	}
	if room.Rating < filters.Rating {
		return false
	}
	if filters.RoomType != FilterAll && string(room.Type) != filters.RoomType {
		return false
	}
	if filters.BedType != "" && filters.BedType != FilterAll && room.BedType != filters.BedType {
		return false
	}
	return true
}

func matchesQuery(room domain.Room, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(room.Name), q) ||
		strings.Contains(strings.ToLower(room.Location), q) ||
		strings.Contains(strings.ToLower(room.Description), q)
}
