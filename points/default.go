package points

// europeanCities is the built-in registry: ten European capitals and hubs.
var europeanCities = []Point{
	{Name: "London", Lat: 51.5074, Lon: -0.1278},
	{Name: "Paris", Lat: 48.8566, Lon: 2.3522},
	{Name: "Berlin", Lat: 52.5200, Lon: 13.4050},
	{Name: "Madrid", Lat: 40.4168, Lon: -3.7038},
	{Name: "Rome", Lat: 41.9028, Lon: 12.4964},
	{Name: "Vienna", Lat: 48.2082, Lon: 16.3738},
	{Name: "Prague", Lat: 50.0755, Lon: 14.4378},
	{Name: "Budapest", Lat: 47.4979, Lon: 19.0402},
	{Name: "Warsaw", Lat: 52.2297, Lon: 21.0122},
	{Name: "Amsterdam", Lat: 52.3676, Lon: 4.9041},
}

// Default returns a fresh Store over the built-in European city list.
func Default() *Store {
	return MustNew(europeanCities...)
}
