// Package contract provides platform contracts with their signature and
// expiry lifecycle.
package contract
