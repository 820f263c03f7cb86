// Package archive provides the immutable Archive façade over the decode
// and encode packages: the three ways to obtain an Archive (empty,
// from an encoded buffer, from a set of tables), plus read-only accessors
// and the two transport-adjacent conveniences, Checksum and compression.
package archive
