// Package neo4j is an alternate graph input source: it queries a live
// Neo4j instance for relationships and converts them to the same
// []graph.RawEdge contract package edgelist produces from a flat file, so
// either source feeds graph.Build identically.
package neo4j
