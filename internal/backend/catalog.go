package backend

import "github.com/stpnv0/RoomBooker/internal/domain"

// DefaultRooms is the demo catalog served by the simulated backend.
var DefaultRooms = []domain.Room{
	{
		ID:            "r101",
		Type:          "Deluxe King Room",
		PricePerNight: 149,
		Capacity:      2,
		Available:     true,
		Image:         "https://images.unsplash.com/photo-1618773928121-c32242e63f39?auto=format&fit=crop&w=1200&q=80",
	},
	{
		ID:            "r202",
		Type:          "Executive Twin Room",
		PricePerNight: 219,
		Capacity:      3,
		Available:     true,
		Image:         "https://images.unsplash.com/photo-1616594039964-f4c0df8bd6b1?auto=format&fit=crop&w=1200&q=80",
	},
	{
		ID:            "r303",
		Type:          "Skyline Suite",
		PricePerNight: 299,
		Capacity:      4,
		Available:     false,
		Image:         "https://images.unsplash.com/photo-1564501049412-61c2a3083791?auto=format&fit=crop&w=1200&q=80",
	},
}
