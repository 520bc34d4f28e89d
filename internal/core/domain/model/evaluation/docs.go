// Package evaluation provides user ratings (1 to 5). Courier and provider
// ratings are derived from them.
package evaluation
