// Package edgelist reads a plain-text edge-list format: one edge per
// line, comma-separated "from,to[,weight]", optionally tagged with a node
// type via "label:type" on either endpoint.
package edgelist
