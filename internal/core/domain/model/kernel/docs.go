// Package kernel provides the value objects shared by every aggregate of the
// back office.
//
// The package includes:
//   - UUID: identifier of users, announcements, deliveries, payments and the rest
//   - Money: non-negative euro amount with cent precision
//   - Route and Schedule: where and when an announcement travels
//   - reference helpers: human readable references and 6-digit validation codes
//
// Value objects carry a guard.ConstructorGuard, so zero values fail Validate.
package kernel
