package models

// RoomInfo describes one room category in the hotel catalog.
type RoomInfo struct {
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
}

// HotelInfo bundles the facts handed to the language model when answering
// free-form guest questions, and to the canned FAQ fallback.
type HotelInfo struct {
	Name         string                `json:"name"`
	Address      string                `json:"address"`
	CheckInTime  string                `json:"check_in_time"`
	CheckOutTime string                `json:"check_out_time"`
	Amenities    []string              `json:"amenities"`
	RoomTypes    map[RoomType]RoomInfo `json:"room_types"`
}
