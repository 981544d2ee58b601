package stage

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Expr is one coordinate of a region position: a sum of named anchors plus
// a constant offset, e.g. "startX + imageWidth + 4". Anchors such as
// "startX" or "imageHeight" are resolved by the template consumer at render
// time; the generator only manipulates them symbolically.
type Expr struct {
	Anchors []string
	Offset  int
}

// Anchor returns an Expr consisting of a single named anchor.
func Anchor(name string) Expr {
	return Expr{Anchors: []string{name}}
}

// Plus returns a copy of e with an additional trailing anchor term.
func (e Expr) Plus(anchor string) Expr {
	anchors := make([]string, 0, len(e.Anchors)+1)
	anchors = append(anchors, e.Anchors...)
	anchors = append(anchors, anchor)
	return Expr{Anchors: anchors, Offset: e.Offset}
}

// Shift returns a copy of e with the constant offset moved by delta.
func (e Expr) Shift(delta int) Expr {
	e.Offset += delta
	return e
}

// String renders the canonical wire form: anchors joined by " + ", followed
// by the offset as " + n" or " - n". A zero offset renders no numeric term.
func (e Expr) String() string {
	var b strings.Builder
	for i, a := range e.Anchors {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(a)
	}
	switch {
	case len(e.Anchors) == 0:
		b.WriteString(strconv.Itoa(e.Offset))
	case e.Offset > 0:
		b.WriteString(" + ")
		b.WriteString(strconv.Itoa(e.Offset))
	case e.Offset < 0:
		b.WriteString(" - ")
		b.WriteString(strconv.Itoa(-e.Offset))
	}
	return b.String()
}

// ParseExpr parses the wire form of a position coordinate. Besides the
// canonical form it accepts the legacy rendering of negative offsets,
// "startY + -5", which older documents contain.
func ParseExpr(s string) (Expr, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Expr{}, errors.Errorf("empty position expression")
	}
	var e Expr
	sign := 1
	expectTerm := true
	for _, f := range fields {
		if !expectTerm {
			switch f {
			case "+":
				sign = 1
			case "-":
				sign = -1
			default:
				return Expr{}, errors.Errorf("malformed position expression %q: expected operator, got %q", s, f)
			}
			expectTerm = true
			continue
		}
		if n, err := strconv.Atoi(f); err == nil {
			e.Offset += sign * n
		} else {
			if sign < 0 {
				return Expr{}, errors.Errorf("malformed position expression %q: cannot subtract anchor %q", s, f)
			}
			e.Anchors = append(e.Anchors, f)
		}
		sign = 1
		expectTerm = false
	}
	if expectTerm {
		return Expr{}, errors.Errorf("malformed position expression %q: trailing operator", s)
	}
	return e, nil
}

// MarshalJSON renders the canonical string form.
func (e Expr) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON parses either the canonical or the legacy string form.
func (e *Expr) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseExpr(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
