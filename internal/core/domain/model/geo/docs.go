// Package geo contains the geographic value objects of the tariff domain:
// Coordinate, GeoPoint, Distance and Boundary.
//
// Coordinates are WGS 84 decimal degrees. Distances are great-circle
// distances over a spherical Earth model, derived with the haversine
// formula. A Boundary restricts where departure and destination points may
// lie, reflecting the carrier's service area.
package geo
