// Package record implements the four NIBArchive wire record types — Key,
// Value, ClassName, and Object — along with the fixed 50-byte header layout
// that precedes their sections.
//
// Each record type exposes EncodedLen/AppendTo for serialization and a
// Parse function for deserialization, mirroring the layout described by the
// wire format: a VarInt-delimited header followed by type-specific payload
// bytes. None of the Parse functions perform cross-table validation (that a
// keyIndex is in range, say) — that is the Decoder's job, since it alone
// knows the sizes of the other three tables.
package record
