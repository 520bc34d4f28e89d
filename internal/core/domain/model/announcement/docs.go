// Package announcement provides the delivery request posted by clients and
// merchants, with its lifecycle Active -> InProgress -> Completed or Cancelled.
package announcement
