// Package sqlite provides the browser storage adapter backed by SQLite.
package sqlite
