// Package parcel contains the Parcel aggregate and its two independent
// lifecycle state machines.
//
// A parcel carries a pickup lifecycle and a delivery lifecycle at the same
// time. Each lifecycle is a two-state machine (pending -> completed) with
// completed as a terminal state. The "next target" routing flags are
// orthogonal booleans attached to pending parcels only: completing a
// lifecycle always forces its flag to false, and the target synchronizer
// guarantees at most one flagged parcel per driver, day, and lifecycle.
package parcel
