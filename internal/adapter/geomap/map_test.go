package geomap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAirportMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.html")
	markers := []Marker{
		{Name: "John F Kennedy International Airport", City: "New York", Lat: 40.64, Lon: -73.78},
		{Name: "Los Angeles International Airport", City: "Los Angeles", Lat: 33.94, Lon: -118.41},
	}

	require.NoError(t, WriteAirportMap(path, "Airports in United States", markers))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "<title>Airports in United States</title>")
	assert.Contains(t, html, "leaflet")
	assert.Contains(t, html, "John F Kennedy International Airport (New York)")
	assert.Contains(t, html, "40.64")
	assert.Contains(t, html, "-118.41")
}

func TestWriteAirportMap_NoMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.html")

	err := WriteAirportMap(path, "Nothing", nil)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestWriteAirportMap_LabelWithoutCity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.html")
	markers := []Marker{{Name: "Ghost Field", Lat: 10, Lon: 20}}

	require.NoError(t, WriteAirportMap(path, "Test", markers))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Ghost Field")
	assert.NotContains(t, string(content), "Ghost Field (")
}

func TestWriteAirportMap_BadPath(t *testing.T) {
	err := WriteAirportMap(filepath.Join(t.TempDir(), "missing", "airports.html"), "Test", []Marker{{Name: "A"}})
	assert.Error(t, err)
}
