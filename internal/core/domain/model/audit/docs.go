// Package audit records who logged in, from where and with which client.
// Records are append-only and read by administrators.
package audit
