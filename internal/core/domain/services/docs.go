// Package services contains stateless domain services that implement business
// rules spanning multiple aggregates. The ConflictChecker enforces the central
// scheduling invariant: no transit mixer or driver may be committed to two
// orders whose dispatch windows overlap.
package services
