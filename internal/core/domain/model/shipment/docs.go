// Package shipment contains the shipment aggregate: a set of packages
// traveling together from a departure point to a destination, priced in a
// single currency.
package shipment
