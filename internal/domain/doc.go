// Package domain models OpenFlights aviation reference data.
//
// # Data Source
//
// The four datasets (airlines, airplanes, airports, routes) follow the
// OpenFlights schema, distributed as headered CSV files. The toolkit reads
// them from a local directory; the fetch adapter can download them first.
//
// # OpenFlights Conventions
//
// Null sentinel:
//
//	"\N" marks a missing value in any column. Parsed as the zero value:
//	empty string for codes and names, unresolved reference for IDs.
//
// Identifiers:
//
//	Airport and airline IDs are OpenFlights database keys. Routes reference
//	airports by these IDs, not by IATA code. IDs are kept as strings because
//	route rows may carry "\N" where the reference is unknown; such routes are
//	excluded from geo-dependent computations but kept in raw listings.
//
// Coordinates:
//
//	Latitude and longitude in decimal degrees (WGS-84). Valid ranges are
//	[-90, 90] and [-180, 180]; rows outside these ranges are loaded but
//	unusable for distance computation. See [Coordinate.Valid].
//
// Equipment:
//
//	The routes "Equipment" column is a space-separated list of aircraft IATA
//	type codes (e.g. "738 73H"). Each code counts as one model occurrence in
//	frequency queries. Codes resolve to model names through the airplanes
//	table.
//
// Active flag:
//
//	Airlines carry "Y" or "N" in the Active column. "Y" parses to true;
//	anything else (including "\N") to false.
//
// # Distance Model
//
// Great-circle distances use the haversine formula with a mean Earth radius
// of 6371 km. See [Haversine].
//
// # Emission Model
//
// Short-haul routes are candidates for rail substitution. The estimate uses
// fixed linear emission factors per passenger-kilometer: 255 g CO₂ for air,
// 41 g CO₂ for rail. These are illustrative defaults and can be overridden
// through configuration. See [EmissionModel].
package domain
