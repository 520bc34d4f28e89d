// Package user provides the account aggregate of the back office.
//
// The package includes:
//   - User: identity, immutable role, wallet balance, last login and language
//   - Role: admin, courier, merchant, client or service provider
//   - Language: preferred language of notifications
//
// Key business rules:
//   - the role of an account never changes
//   - the wallet only grows, through the payment cascade
package user
