// Package message provides the Message entity: a short text sent from one
// user to another, optionally about an announcement. Messages are never
// edited.
package message
