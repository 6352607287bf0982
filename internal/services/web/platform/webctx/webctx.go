// Package webctx carries per-request browser identity through contexts.
package webctx

import (
	"context"
	"net/http"
	"strings"
)

type namespaceKey struct{}

// WithNamespace returns ctx tagged with the browser storage namespace.
func WithNamespace(ctx context.Context, namespace string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, namespaceKey{}, strings.TrimSpace(namespace))
}

// Namespace returns the browser storage namespace carried by ctx.
func Namespace(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	namespace, _ := ctx.Value(namespaceKey{}).(string)
	return namespace
}

// NamespaceFrom returns the browser storage namespace for r.
func NamespaceFrom(r *http.Request) string {
	if r == nil {
		return ""
	}
	return Namespace(r.Context())
}
