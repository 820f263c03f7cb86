// Package transport provides whole-buffer compression codecs for carrying
// encoded NIBArchive buffers over a network or into cold storage.
//
// Compression here is strictly an outside-the-wire-format concern: it never
// changes what Bytes() or FromBuffer observe on the canonical archive
// buffer, it only wraps that buffer for transport or storage.
package transport
