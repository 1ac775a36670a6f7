package catalog

func seed() []Hotel {
	return []Hotel{
		{
			ID: 1, Name: "Agoda Palace", City: "Bangkok", Price: 120, Rating: 4.5,
			Amenities:    []Amenity{WiFi, Pool, Gym},
			Availability: Availability{CheckIn: MustDate("2025-01-15"), CheckOut: MustDate("2025-01-20")},
		},
		{
			ID: 2, Name: "Seaside View", City: "Phuket", Price: 80, Rating: 4.2,
			Amenities:    []Amenity{WiFi, Beach},
			Availability: Availability{CheckIn: MustDate("2025-01-10"), CheckOut: MustDate("2025-01-25")},
		},
		{
			ID: 3, Name: "Mountain Stay", City: "Chiang Mai", Price: 100, Rating: 4.8,
			Amenities:    []Amenity{WiFi, Gym, Spa},
			Availability: Availability{CheckIn: MustDate("2025-01-05"), CheckOut: MustDate("2025-01-30")},
		},
		{
			ID: 4, Name: "Urban Loft", City: "Bangkok", Price: 150, Rating: 4.6,
			Amenities:    []Amenity{WiFi, Pool, Restaurant},
			Availability: Availability{CheckIn: MustDate("2025-01-12"), CheckOut: MustDate("2025-01-18")},
		},
		{
			ID: 5, Name: "Tropical Resort", City: "Phuket", Price: 200, Rating: 4.9,
			Amenities:    []Amenity{WiFi, Pool, Beach, Spa},
			Availability: Availability{CheckIn: MustDate("2025-01-08"), CheckOut: MustDate("2025-01-22")},
		},
		{
			ID: 6, Name: "City Center Hotel", City: "Bangkok", Price: 90, Rating: 4.0,
			Amenities:    []Amenity{WiFi, Restaurant, Parking},
			Availability: Availability{CheckIn: MustDate("2025-01-01"), CheckOut: MustDate("2025-02-28")},
		},
		{
			ID: 7, Name: "Beachfront Paradise", City: "Phuket", Price: 250, Rating: 4.7,
			Amenities:    []Amenity{WiFi, Pool, Beach, Spa, Restaurant},
			Availability: Availability{CheckIn: MustDate("2025-01-05"), CheckOut: MustDate("2025-01-25")},
		},
		{
			ID: 8, Name: "Jungle Retreat", City: "Chiang Mai", Price: 130, Rating: 4.4,
			Amenities:    []Amenity{WiFi, Spa, Restaurant},
			Availability: Availability{CheckIn: MustDate("2025-01-10"), CheckOut: MustDate("2025-01-28")},
		},
		{
			ID: 9, Name: "Royal Orchid", City: "Bangkok", Price: 180, Rating: 4.8,
			Amenities:    []Amenity{WiFi, Pool, Gym, Spa, Restaurant, Bar},
			Availability: Availability{CheckIn: MustDate("2025-01-15"), CheckOut: MustDate("2025-02-15")},
		},
		{
			ID: 10, Name: "Sunset Bay Resort", City: "Phuket", Price: 160, Rating: 4.3,
			Amenities:    []Amenity{WiFi, Beach, Pool, Bar},
			Availability: Availability{CheckIn: MustDate("2025-01-12"), CheckOut: MustDate("2025-01-30")},
		},
		{
			ID: 11, Name: "Heritage Boutique", City: "Chiang Mai", Price: 110, Rating: 4.6,
			Amenities:    []Amenity{WiFi, Restaurant, Spa},
			Availability: Availability{CheckIn: MustDate("2025-01-08"), CheckOut: MustDate("2025-02-10")},
		},
		{
			ID: 12, Name: "Grand Metropolitan", City: "Bangkok", Price: 220, Rating: 4.9,
			Amenities:    []Amenity{WiFi, Pool, Gym, Spa, Restaurant, Bar, Parking},
			Availability: Availability{CheckIn: MustDate("2025-01-01"), CheckOut: MustDate("2025-03-01")},
		},
		{
			ID: 13, Name: "Coconut Beach Villa", City: "Phuket", Price: 300, Rating: 5.0,
			Amenities:    []Amenity{WiFi, Pool, Beach, Spa, Restaurant, Bar},
			Availability: Availability{CheckIn: MustDate("2025-01-20"), CheckOut: MustDate("2025-02-20")},
		},
		{
			ID: 14, Name: "Budget Inn", City: "Bangkok", Price: 45, Rating: 3.5,
			Amenities:    []Amenity{WiFi},
			Availability: Availability{CheckIn: MustDate("2025-01-01"), CheckOut: MustDate("2025-12-31")},
		},
		{
			ID: 15, Name: "Riverside Lodge", City: "Chiang Mai", Price: 85, Rating: 4.1,
			Amenities:    []Amenity{WiFi, Restaurant, Parking},
			Availability: Availability{CheckIn: MustDate("2025-01-15"), CheckOut: MustDate("2025-02-28")},
		},
	}
}

// Default is the built-in fifteen hotel catalog.
func Default() *Catalog {
	c, err := New(seed())
	if err != nil {
		panic(err)
	}

	return c
}
