// Package encode implements the NIBArchive Encoder: turning four record
// tables into a deterministic, canonically laid out byte buffer.
//
// The Encoder applies the same cross-table validation the Decoder applies
// on the way in, so a round trip through Encode then decode.Decode never
// surfaces a cross-table violation that Encode itself would have caught.
package encode
