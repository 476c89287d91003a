// Package arcadia contains the typed bindings for the BFF GraphQL
// operations. Everything except this file is generated from the BFF schema
// and the operation documents; regenerate instead of editing by hand.
package arcadia

//go:generate go run github.com/Khan/genqlient
