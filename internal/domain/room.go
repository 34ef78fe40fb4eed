package domain

// RoomType classifies a catalog room.
type RoomType string

// Room types seeded into the catalog.
const (
	RoomTypeSuite        RoomType = "Suite"
	RoomTypeDeluxe       RoomType = "Deluxe"
	RoomTypeStandard     RoomType = "Standard"
	RoomTypePresidential RoomType = "Presidential"
	RoomTypeStudio       RoomType = "Studio"
)

// Room is a catalog entity. Rooms are seeded once into the remote store and
// read-mostly thereafter; no client path mutates price or availability.
//
// Price is the canonical price attribute. Records that still carry the
// legacy priceINR field are migrated at the gateway decode boundary, so
// everything past the gateway can rely on Price alone.
type Room struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Capacity     int      `json:"capacity"`
	Type         RoomType `json:"type"`
	BedType      string   `json:"bedType"`
	Amenities    []string `json:"amenities,omitempty"`
	Features     []string `json:"features,omitempty"`
	Images       []string `json:"images,omitempty"`
	Available    bool     `json:"available"`
	Cancellation string   `json:"cancellation,omitempty"`
}
