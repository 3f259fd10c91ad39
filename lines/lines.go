// Package lines provides newline-delimited text readers and writers over
// the same compressor abstraction the typed columns use (§3.7). Unlike
// column.Reader/Writer there is no None sentinel, no fixed/blob framing
// and no hashfilter: a line is just a string terminated by '\n'.
package lines

// bom is the UTF-8 byte-order mark, stripped or written at the request of
// StripBOM/WriteBOM (grounded in original_source/gzutil/gzutilmodule.c's
// BOM_STR).
var bom = []byte{0xEF, 0xBB, 0xBF}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

func validAscii(line []byte) (int, bool) {
	for i, b := range line {
		if b < 0x01 || b > 0x7F {
			return i, false
		}
	}
	return 0, true
}
