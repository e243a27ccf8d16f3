// Package services contains the domain services of the tariff engine.
// TariffCalculator prices a shipment from carrier rates, a minimum price
// and a minimum billable distance.
package services
