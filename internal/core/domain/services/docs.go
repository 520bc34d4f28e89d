// Package services provides domain services coordinating several aggregates.
//
// The package includes:
//   - BidArbiter: proposal checks and acceptance of one courier's delivery
//   - PaymentCascade: invoice issuance and wallet credit on payment success
//   - RatingCalculator: user rating from received evaluation scores
//
// Services are stateless and do no I/O; command handlers load the aggregates
// and persist the outcome.
package services
