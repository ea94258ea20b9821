// Package base64 implements standard Base64 encoding and decoding
// as defined in RFC 4648 Section 4, used to carry arbitrary binary
// data over text-only channels (JSON values, headers, config files).
//
// The codec is self-contained: a fixed 64-character alphabet, a dense
// reverse lookup table derived from it, and two pure functions. Both
// tables are built once at package initialization and never written
// again, so they are safe for unsynchronized concurrent reads.
//
// Encoding is total over all byte sequences and pads output with '='
// to a multiple of four characters. Decoding ignores interior
// whitespace (RFC tolerance for line-wrapped input) but otherwise
// rejects malformed input outright: there is no partial output.
//
// Related RFCs:
//   - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648#section-4 The Base 64 Encoding
package base64
