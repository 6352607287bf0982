// Package storage declares the browser-scoped key-value persistence contract.
//
// Each browser gets its own namespace, identified by the signed portal
// cookie. Values are opaque bytes; callers own their encoding.
package storage
