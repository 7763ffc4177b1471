package calc

// Concat, Lower, Upper, Left, Right, Trim, LTrim, RTrim, Substr and Mid
// implement spec.md §4.2.7's string functions, grounded on
// original_source/src/expr/calc/string_fun.cc. Indexing throughout is
// byte-based, matching the original's std::string::length/substr.

// Concat returns v0+v1.
func Concat(v0, v1 string) string { return v0 + v1 }

// Lower and Upper apply ASCII case folding, matching the original's
// std::tolower/std::toupper over unsigned char.
func Lower(v string) string { return flipASCIICase(v, 'A', 'Z') }
func Upper(v string) string { return flipASCIICase(v, 'a', 'z') }

// flipASCIICase flips the case of every byte of v in [lo, hi], leaving all
// other bytes (including non-ASCII ones) unchanged.
func flipASCIICase(v string, lo, hi byte) string {
	b := []byte(v)
	for i, c := range b {
		if lo <= c && c <= hi {
			b[i] = c ^ 0x20
		}
	}
	return string(b)
}

// Left returns the leading n bytes of v, or all of v when n is at least as
// long as v, or "" when n is zero or negative.
func Left(v string, n int32) string {
	if n <= 0 {
		return ""
	}
	if int(n) >= len(v) {
		return v
	}
	return v[:n]
}

// Right returns the trailing n bytes of v, with the same boundary rules as
// Left.
func Right(v string, n int32) string {
	if n <= 0 {
		return ""
	}
	if int(n) >= len(v) {
		return v
	}
	return v[len(v)-int(n):]
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Trim strips leading and trailing whitespace bytes.
func Trim(v string) string { return RTrim(LTrim(v)) }

// LTrim strips leading whitespace bytes only.
func LTrim(v string) string {
	i := 0
	for i < len(v) && isSpace(v[i]) {
		i++
	}
	return v[i:]
}

// RTrim strips trailing whitespace bytes only.
func RTrim(v string) string {
	i := len(v)
	for i > 0 && isSpace(v[i-1]) {
		i--
	}
	return v[:i]
}

// Substr2 returns the substring of v starting at byte offset start (clamped
// to 0 when negative) through the end of v.
func Substr2(v string, start int32) string {
	if start < 0 {
		start = 0
	}
	if start == 0 {
		return v
	}
	if int(start) >= len(v) {
		return ""
	}
	return v[start:]
}

// Substr3 returns the substring of v starting at byte offset start (clamped
// to 0 when negative) and ending at byte offset end (clamped to len(v) when
// beyond it).
func Substr3(v string, start, end int32) string {
	length := int32(len(v))
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if end <= start {
		return ""
	}
	return v[start:end]
}

// Mid2 returns the substring of v starting at the 1-based position pos
// (negative pos counts from the end) through the end of v, or "" when pos
// is out of range.
func Mid2(v string, pos int32) string {
	length := int32(len(v))
	idx, ok := midIndex(pos, length)
	if !ok {
		return ""
	}
	return v[idx:]
}

// Mid3 returns up to count bytes of v starting at the 1-based position pos
// (negative pos counts from the end), or "" when pos is out of range or
// count is not positive.
func Mid3(v string, pos, count int32) string {
	if count <= 0 {
		return ""
	}
	length := int32(len(v))
	idx, ok := midIndex(pos, length)
	if !ok {
		return ""
	}
	if idx+count >= length {
		return v[idx:]
	}
	return v[idx : idx+count]
}

// midIndex converts MID's 1-based, negative-from-end position into a
// 0-based byte offset, reporting ok=false when pos addresses no position in
// v.
func midIndex(pos, length int32) (int32, bool) {
	switch {
	case pos > 0 && pos <= length:
		return pos - 1, true
	case pos < 0 && -length <= pos:
		return pos + length, true
	default:
		return 0, false
	}
}
