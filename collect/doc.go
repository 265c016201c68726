// Package collect holds the companion containers plexus structures are
// assembled from: an ordered duplicate-tolerant Listing, an
// insertion-ordered Dictionary, a wildcard-keyed Catalog, and Hybrid,
// a node sequence indexed by name.
//
// All containers are deterministic: iteration follows insertion order,
// never map order. None are safe for concurrent use.
package collect
