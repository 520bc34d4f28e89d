// Package notification provides the append-only Notification entity and
// the templates commands use to address users. Templates carry catalog keys,
// rendered in the recipient's language when the notification is recorded.
package notification
