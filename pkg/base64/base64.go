package base64

// EncodedLen returns the length in characters of the Base64 encoding
// of an input of n bytes: ceil(n/3)*4.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n characters of Base64 input; padding in the final
// group shortens the actual result by up to two bytes.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode returns the RFC 4648 standard Base64 encoding of src,
// padded with '=' to a multiple of four characters. It is total over
// all byte sequences: empty input encodes to the empty string.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	out := make([]byte, 0, EncodedLen(len(src)))

	// Full 3-byte groups pack into a 24-bit word, emitted as four
	// 6-bit alphabet indexes, most significant first.
	i := 0
	for ; i+3 <= len(src); i += 3 {
		word := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		out = append(out,
			alphabet[word>>18&0x3F],
			alphabet[word>>12&0x3F],
			alphabet[word>>6&0x3F],
			alphabet[word&0x3F],
		)
	}

	// Leftover bytes fill the high end of a 24-bit word; the unused
	// low slices become padding.
	switch len(src) - i {
	case 1:
		word := uint32(src[i]) << 16
		out = append(out,
			alphabet[word>>18&0x3F],
			alphabet[word>>12&0x3F],
			padChar,
			padChar,
		)
	case 2:
		word := uint32(src[i])<<16 | uint32(src[i+1])<<8
		out = append(out,
			alphabet[word>>18&0x3F],
			alphabet[word>>12&0x3F],
			alphabet[word>>6&0x3F],
			padChar,
		)
	}

	return string(out)
}

// Decode returns the bytes represented by the Base64 input encoded.
//
// A nil input is rejected with ErrInvalidInput. Whitespace anywhere in
// the input is ignored. After whitespace removal the input must be a
// non-empty multiple of four characters (ErrInvalidLength otherwise),
// and every remaining byte must be an alphabet character or padding
// (*InvalidCharacterError otherwise). Decoding either fully succeeds
// or fully fails; no partial output is returned.
//
// Note the intentional asymmetry with Encode: encoding an empty input
// yields "", but decoding an empty input is a length error.
func Decode(encoded []byte) ([]byte, error) {
	if encoded == nil {
		return nil, ErrInvalidInput
	}
	return decode(encoded)
}

// DecodeString is like Decode but takes its input as a string. A Go
// string is never absent, so DecodeString("") reports ErrInvalidLength,
// never ErrInvalidInput.
func DecodeString(encoded string) ([]byte, error) {
	return decode([]byte(encoded))
}

func decode(encoded []byte) ([]byte, error) {
	clean := stripWhitespace(encoded)

	if len(clean) == 0 || len(clean)%4 != 0 {
		return nil, ErrInvalidLength
	}

	// Padding only ever appears in the last two positions.
	padding := 0
	if clean[len(clean)-1] == padChar {
		padding++
		if clean[len(clean)-2] == padChar {
			padding++
		}
	}

	out := make([]byte, 0, len(clean)/4*3-padding)

	for i := 0; i < len(clean); i += 4 {
		var group [4]entry
		for j, c := range clean[i : i+4] {
			e := decodeTable[c]
			if e.class == classInvalid {
				return nil, newInvalidCharacterError(c, i+j)
			}
			group[j] = e
		}

		// Padding entries carry a zero value, so they are inert in
		// the packing; their bytes are suppressed below.
		word := uint32(group[0].value)<<18 |
			uint32(group[1].value)<<12 |
			uint32(group[2].value)<<6 |
			uint32(group[3].value)

		out = append(out, byte(word>>16))
		if group[2].class != classPadding {
			out = append(out, byte(word>>8))
		}
		if group[3].class != classPadding {
			out = append(out, byte(word))
		}
	}

	return out, nil
}

// stripWhitespace drops ASCII whitespace from src. It works on raw
// bytes rather than runes so that non-ASCII bytes reach the decode
// table unchanged and are reported as the invalid characters they are.
func stripWhitespace(src []byte) []byte {
	clean := make([]byte, 0, len(src))
	for _, c := range src {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		clean = append(clean, c)
	}
	return clean
}
