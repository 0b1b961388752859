// Package kernel contains shared value objects used across all domain
// aggregates, currently the UUID identifier type.
package kernel
