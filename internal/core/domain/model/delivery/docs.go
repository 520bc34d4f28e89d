// Package delivery provides the Delivery aggregate: a courier's proposal on an
// announcement which, once accepted by the client, tracks the transport
// until delivery.
//
// Key invariants:
//   - at most one engaged (in progress or delivered) delivery per announcement,
//     enforced by the accepting command under an announcement row lock
//   - the validation code is six digits and never changes
//   - IsLate is a pure predicate with no side effect
package delivery
