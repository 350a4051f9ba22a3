package domain

type Room struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	PricePerNight int64  `json:"pricePerNight"`
	Capacity      int    `json:"capacity"`
	Available     bool   `json:"available"`
	Image         string `json:"image"`
}

type Snapshot struct {
	Rooms    []Room    `json:"rooms"`
	Bookings []Booking `json:"bookings"`
}

func (s Snapshot) FindRoom(id string) (Room, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
