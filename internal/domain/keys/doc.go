// Package keys defines the metadata registry of generated key records.
package keys
