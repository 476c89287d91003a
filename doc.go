// Package bffsdk is a client SDK for the BFF GraphQL API serving ML
// resource metadata (datasets, data sources, embedders, knowledge bases,
// models, versioned datasets).
//
// The package wraps the GraphQL transport with request middleware (operation
// tagging, Authorization header injection) and response middleware (error
// classification with injected UI reactions), and layers a cached,
// revalidating fetch API on top of the generated operation bindings in the
// arcadia subpackage.
package bffsdk
