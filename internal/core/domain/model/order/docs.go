// Package order contains the Order aggregate of the dispatch domain.
// An order moves through a permissive status lifecycle while its scheduling
// operations gate the fields they need: production scheduling requires a valid
// production slot, dispatch scheduling a valid dispatch window, and vehicle
// assignment an existing dispatch window. The aggregate owns every time field
// the conflict resolution relies on.
package order
