// Package cache persists built transition tables in a badger key-value
// store, keyed on a graph's consistent hash plus its mode and bias
// parameters, so a second run against the same graph and parameters can
// skip package transition's Build entirely.
package cache
