package nfa

// Byte-level predicates backing the consuming instructions. Input is an
// opaque byte sequence; there is no Unicode awareness anywhere in the engine.

func matchDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func matchAlphanum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || matchDigit(c)
}

func matchWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', 0x0b /* \v */, 0x0c /* \f */ :
		return true
	}
	return false
}

func matchDot(_ byte) bool {
	// '.' matches newlines too.
	return true
}

// matchRange reports whether c falls in a range starting at s[0].
// A range is s[0]-s[2] with s[1] == '-'; it never begins with '-' and never
// matches '-' itself, so "a--b" and "[a-b-]" keep their literal-dash reading.
func matchRange(c byte, s []byte) bool {
	return len(s) >= 3 &&
		c != '-' &&
		s[0] != '-' &&
		s[1] == '-' &&
		c >= s[0] && c <= s[2]
}

// matchClass scans a raw class body left to right and reports whether c is a
// member. The body is the verbatim pattern text between the brackets, escapes
// included.
//
// Dash policy: a '-' at the first or last position of the body matches a
// literal '-'; everywhere else it only forms ranges. A trailing '\' with no
// byte after it ends the scan with no match: bytes matched by members before
// it still match, every other byte does not.
func matchClass(class []byte, c byte) bool {
	i := 0
	for i < len(class) {
		switch {
		case matchRange(c, class[i:]):
			return true
		case class[i] == '\\':
			if i+1 >= len(class) {
				// Malformed body. Wrong for inverted classes, but kept as
				// unspecified behavior.
				return false
			}
			var ok bool
			switch class[i+1] {
			case 'd':
				ok = matchDigit(c)
			case 'D':
				ok = !matchDigit(c)
			case 'w':
				ok = matchAlphanum(c)
			case 'W':
				ok = !matchAlphanum(c)
			case 's':
				ok = matchWhitespace(c)
			case 'S':
				ok = !matchWhitespace(c)
			default:
				ok = c == class[i+1]
			}
			if ok {
				return true
			}
			i += 2
			continue
		case (i == 0 || i+1 == len(class)) && class[i] == '-' && c == '-':
			return true
		case c != '-' && c == class[i]:
			return true
		}
		i++
	}
	return false
}

// MatchOne reports whether the consuming instruction in matches the byte c.
// Non-consuming instructions (OpUnused, OpBegin, OpEnd, OpJmp, OpSplit)
// never match.
func (p *Program) MatchOne(in Inst, c byte) bool {
	switch in.op {
	case OpDot:
		return matchDot(c)
	case OpChar:
		return c == in.a
	case OpCharClass:
		return matchClass(p.Class(in.Class()), c)
	case OpInvCharClass:
		return !matchClass(p.Class(in.Class()), c)
	case OpDigit:
		return matchDigit(c)
	case OpNotDigit:
		return !matchDigit(c)
	case OpAlpha:
		return matchAlphanum(c)
	case OpNotAlpha:
		return !matchAlphanum(c)
	case OpWhitespace:
		return matchWhitespace(c)
	case OpNotWhitespace:
		return !matchWhitespace(c)
	default:
		return false
	}
}
