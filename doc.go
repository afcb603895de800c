/*
Package ternset provides an ordered set of strings backed by a ternary
search tree stored in a single flat array of integers. It supports exact
membership, prefix, suffix, wildcard, edit-distance, Hamming-distance and
arrangement queries, optional unicode folding, and compaction of shared
subtrees into a DAG to reduce memory.
*/
package ternset
