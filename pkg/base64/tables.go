package base64

// alphabet is the standard Base64 alphabet: index (0–63) maps directly
// to its output character.
//
// https://datatracker.ietf.org/doc/html/rfc4648#section-4
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// padChar is appended to encoded output to make its length a multiple
// of four when the input length is not a multiple of three.
const padChar = '='

// class partitions the 256-byte input domain for decoding. Every byte
// is exactly one of: a data character carrying a 6-bit value, the
// padding character, or invalid.
type class uint8

const (
	classInvalid class = iota
	classValue
	classPadding
)

// entry is one decode-table slot: the byte's class, and its 6-bit
// value (0–63) when the class is classValue. Padding entries keep a
// zero value so they are inert in the bit-packing arithmetic.
type entry struct {
	class class
	value byte
}

// decodeTable maps every possible input byte to its class and value.
// It is derived from alphabet, never authored independently, so the
// two can not drift apart.
var decodeTable = buildDecodeTable()

func buildDecodeTable() [256]entry {
	var table [256]entry
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = entry{class: classValue, value: byte(i)}
	}
	table[padChar] = entry{class: classPadding}
	return table
}
