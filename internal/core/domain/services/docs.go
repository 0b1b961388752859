// Package services contains domain services: logic that spans aggregates
// and does not fit a single one, currently the charge-time order pricing.
package services
