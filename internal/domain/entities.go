package domain

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate lies within legal degree ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Airline is a row from the airlines table.
type Airline struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Alias    string `json:"alias,omitempty"`
	IATA     string `json:"iata,omitempty"`
	ICAO     string `json:"icao,omitempty"`
	Callsign string `json:"callsign,omitempty"`
	Country  string `json:"country,omitempty"`
	Active   bool   `json:"active"`
}

// Airplane is a row from the airplanes table: an aircraft model and its
// IATA/ICAO type codes.
type Airplane struct {
	Name string `json:"name"`
	IATA string `json:"iata,omitempty"`
	ICAO string `json:"icao,omitempty"`
}

// Airport is a row from the airports table.
type Airport struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	City     string     `json:"city,omitempty"`
	Country  string     `json:"country,omitempty"`
	IATA     string     `json:"iata,omitempty"`
	ICAO     string     `json:"icao,omitempty"`
	Coord    Coordinate `json:"coord"`
	Altitude float64    `json:"altitude,omitempty"` // feet above sea level
}

// Route is a directed airline connection between two airports. Airport and
// airline references use OpenFlights IDs; a reference of "" means the source
// row carried the null sentinel.
type Route struct {
	AirlineCode string   `json:"airline_code,omitempty"` // IATA or ICAO code of the operator
	AirlineID   string   `json:"airline_id,omitempty"`
	SourceCode  string   `json:"source_code,omitempty"` // IATA or ICAO code of the source airport
	SourceID    string   `json:"source_id,omitempty"`
	DestCode    string   `json:"dest_code,omitempty"`
	DestID      string   `json:"dest_id,omitempty"`
	Codeshare   bool     `json:"codeshare,omitempty"`
	Stops       int      `json:"stops,omitempty"`
	Equipment   []string `json:"equipment,omitempty"` // aircraft IATA type codes
}
