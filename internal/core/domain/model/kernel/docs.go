// Package kernel contains the shared value objects of the dispatch domain:
// UUID identity and the half-open TimeWindow used for dispatch scheduling.
// Value objects are immutable and must be created through their constructor
// functions; zero values fail Validate.
package kernel
