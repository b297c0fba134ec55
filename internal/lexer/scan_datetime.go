package lexer

import (
	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// scanDateTime tries to consume one #...# date or time literal. The
// accepted shapes are
//
//	#M/D/YYYY#
//	#M/D/YYYY H:MM:SS AM#
//	#H:MM:SS PM#
//
// with one- or two-digit month, day and hour (no leading zero), a
// three- or four-digit year, and case-sensitive AM/PM markers. Anything
// else backtracks completely: "#5#" is a symbol, a number and another
// symbol, never half a date.
func (lx *Lexer) scanDateTime() bool {
	m := lx.s.Mark()
	if !lx.tryDateTime() {
		lx.s.Reset(m)
		return false
	}
	lx.push(token.DateTimeLiteral, lx.s.SpanFrom(m))
	return true
}

func (lx *Lexer) tryDateTime() bool {
	if _, ok := lx.s.Take("#", source.CaseSensitive); !ok {
		return false
	}
	m := lx.s.Mark()
	if lx.tryDate() {
		if _, ok := lx.s.Take("#", source.CaseSensitive); ok {
			return true
		}
		if _, ok := lx.s.Take(" ", source.CaseSensitive); ok && lx.tryClockClose() {
			return true
		}
	}
	lx.s.Reset(m)
	return lx.tryClockClose()
}

// tryDate consumes M/D/YYYY.
func (lx *Lexer) tryDate() bool {
	if !lx.takeSmallInt(12) {
		return false
	}
	if _, ok := lx.s.Take("/", source.CaseSensitive); !ok {
		return false
	}
	if !lx.takeSmallInt(31) {
		return false
	}
	if _, ok := lx.s.Take("/", source.CaseSensitive); !ok {
		return false
	}
	return lx.takeYear()
}

// tryClockClose consumes "H:MM:SS AM#" or "H:MM:SS PM#".
func (lx *Lexer) tryClockClose() bool {
	if !lx.takeSmallInt(12) {
		return false
	}
	if _, ok := lx.s.Take(":", source.CaseSensitive); !ok {
		return false
	}
	if !lx.takeTwoDigits(59) {
		return false
	}
	if _, ok := lx.s.Take(":", source.CaseSensitive); !ok {
		return false
	}
	if !lx.takeTwoDigits(59) {
		return false
	}
	if _, ok := lx.s.Take(" AM#", source.CaseSensitive); ok {
		return true
	}
	_, ok := lx.s.Take(" PM#", source.CaseSensitive)
	return ok
}

// takeSmallInt consumes a one- or two-digit value in 1..max with no
// leading zero, preferring the two-digit reading when it fits the range.
func (lx *Lexer) takeSmallInt(max int) bool {
	d0 := lx.s.PeekByte()
	if !source.IsDigit(d0) || d0 == '0' {
		return false
	}
	if d1, ok := lx.s.PeekByteAt(1); ok && source.IsDigit(d1) {
		if v := int(d0-'0')*10 + int(d1-'0'); v <= max {
			lx.s.TakeCount(2)
			return true
		}
	}
	lx.s.TakeCount(1)
	return true
}

// takeTwoDigits consumes exactly two digits whose value is at most max.
func (lx *Lexer) takeTwoDigits(max int) bool {
	d0 := lx.s.PeekByte()
	d1, ok := lx.s.PeekByteAt(1)
	if !source.IsDigit(d0) || !ok || !source.IsDigit(d1) {
		return false
	}
	if int(d0-'0')*10+int(d1-'0') > max {
		return false
	}
	lx.s.TakeCount(2)
	return true
}

// takeYear consumes a three- or four-digit year, preferring four.
func (lx *Lexer) takeYear() bool {
	for i := uint32(0); i < 3; i++ {
		if b, ok := lx.s.PeekByteAt(i); !ok || !source.IsDigit(b) {
			return false
		}
	}
	if b, ok := lx.s.PeekByteAt(3); ok && source.IsDigit(b) {
		lx.s.TakeCount(4)
		return true
	}
	lx.s.TakeCount(3)
	return true
}
