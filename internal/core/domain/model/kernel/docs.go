// Package kernel contains the shared measurement and money value objects of
// the tariff domain: Length, Weight, Volume, OuterDimensions, Currency and
// Price.
//
// All types are immutable, validate their invariants eagerly in their
// constructors and embed a guard.ConstructorGuard so zero values fail
// Validate. Money amounts use shopspring decimals; physical quantities use
// scaled integers (millimeters, grams, cubic centimeters) so no measurement
// ever carries binary floating-point error.
package kernel
