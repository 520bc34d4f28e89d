// Package catalog provides the services offered by service providers.
package catalog
