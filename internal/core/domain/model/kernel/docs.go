// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds identity primitives that every aggregate relies on but
// that carry no business behavior of their own. Value objects here are
// immutable, validated on construction, and safe for concurrent use.
package kernel
