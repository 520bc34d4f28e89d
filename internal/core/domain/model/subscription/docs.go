// Package subscription provides user plans (free, starter, premium) and
// their expiry.
package subscription
