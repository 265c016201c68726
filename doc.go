// Package plexus is an in-memory toolkit for composite data
// structures — directed graphs, trees, and pipelines that convert into
// one another and compose behind a single directed-structure contract.
//
// 🚀 What is plexus?
//
//	A small, dependency-light library that brings together:
//		• Node identity: adapt any Go value into a named vertex, without mutating it
//		• Shape classification: one explicit Kind per recognized composite form
//		• Converters: edge lists, adjacency maps, matrices, pipelines, trees
//		• System: the canonical mutable directed graph with path enumeration
//		• Hierarchy: the tree-backed counterpart, branch-positional
//		• Collections: ordered listings, dictionaries, wildcard catalogs
//
// ✨ Why choose plexus?
//
//   - One canonical form – every composite converts through Adjacency
//   - Deterministic – admission order plus sorted iteration, reproducible output
//   - Interchangeable – graph-backed and tree-backed composites share one contract
//   - Honest failures – sentinel errors name the offending shape, never guess
//
// Everything is organized under seven subpackages:
//
//	node/      — the Node interface, identity adapters, name derivation
//	shape/     — concrete representation types + Kind classification
//	convert/   — conversions between representations via canonical adjacency
//	collect/   — Listing, Dictionary, Catalog, Hybrid ordered collections
//	structure/ — the Directed contract, walk options, composition helpers
//	graph/     — System, the adjacency-backed directed composite
//	arbor/     — Hierarchy, the tree-backed directed composite
//
// Quick ASCII example:
//
//	bonnie ─→ clyde              paths:
//	   └────→ henchman             bonnie→clyde
//	butch ──→ sundance ─┘          bonnie→henchman
//	                               butch→sundance→henchman
//
// Dive into examples/ for a full workflow scenario.
//
//	go get github.com/halcyard/plexus
package plexus
