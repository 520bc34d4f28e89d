// Package validation provides the courier onboarding workflow.
//
// The package includes:
//   - Request: the validation request state machine
//   - Status: pending, under_review, approved, rejected
//   - Document: a justification file reviewed by admins
//   - DocumentType: identity card, driving license and the optional kinds
//
// Key business rules:
//   - a request is approved only when both an identity card and a driving
//     license are validated
//   - a pending request escalates to under_review by itself once both
//     mandatory documents are validated
//   - approved is final; rejected leaves only through an explicit admin reopen
//   - repeating a decision that is already in effect changes nothing
package validation
