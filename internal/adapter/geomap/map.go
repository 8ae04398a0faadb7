// Package geomap writes standalone HTML map artifacts with Leaflet markers.
package geomap

import (
	"errors"
	"fmt"
	"html/template"
	"os"
)

// Marker is one labeled point on the map.
type Marker struct {
	Name string
	City string
	Lat  float64
	Lon  float64
}

type markerJS struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

var mapTemplate = template.Must(template.New("airportmap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map('map');
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  maxZoom: 19,
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var markers = {{.Markers}};
var group = L.featureGroup();
markers.forEach(function (m) {
  L.marker([m.lat, m.lon]).bindPopup(m.label).addTo(group);
});
group.addTo(map);
map.fitBounds(group.getBounds().pad(0.2));
</script>
</body>
</html>
`))

// WriteAirportMap renders a map with the given markers to an HTML file at
// path. At least one marker is required; an empty map artifact would hide a
// filter that matched nothing.
func WriteAirportMap(path, title string, markers []Marker) error {
	if len(markers) == 0 {
		return errors.New("no markers to plot")
	}

	js := make([]markerJS, 0, len(markers))
	for _, m := range markers {
		label := m.Name
		if m.City != "" {
			label = fmt.Sprintf("%s (%s)", m.Name, m.City)
		}
		js = append(js, markerJS{Label: label, Lat: m.Lat, Lon: m.Lon})
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map file: %w", err)
	}
	defer f.Close()

	data := struct {
		Title   string
		Markers []markerJS
	}{Title: title, Markers: js}

	if err := mapTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("render map: %w", err)
	}
	return f.Close()
}
