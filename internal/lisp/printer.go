/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package lisp

import (
	"io"
	"strconv"
	"strings"
)

// WriteTo renders v the way the REPL prints a result: no trailing
// whitespace, "Error: " prefix on errors, parens around S-Expressions,
// braces around Q-Expressions, "<builtin>" for primitives and
// "(\ <formals> <body>)" for lambdas.
func (v Value) WriteTo(w io.Writer) {
	switch v.Kind {
	case KindNumber:
		io.WriteString(w, strconv.FormatFloat(v.Num, 'g', -1, 64))
	case KindError:
		io.WriteString(w, "Error: "+v.Str)
	case KindSymbol:
		io.WriteString(w, v.Str)
	case KindFunction:
		if v.Fun.Builtin != nil {
			io.WriteString(w, "<builtin>")
			return
		}
		io.WriteString(w, "(\\ ")
		v.Fun.Formals.WriteTo(w)
		io.WriteString(w, " ")
		v.Fun.Body.WriteTo(w)
		io.WriteString(w, ")")
	case KindSExpr:
		writeSeq(w, v.Cells, '(', ')')
	case KindQExpr:
		writeSeq(w, v.Cells, '{', '}')
	}
}

func writeSeq(w io.Writer, cells []Value, open, close byte) {
	w.Write([]byte{open})
	for i, c := range cells {
		c.WriteTo(w)
		if i != len(cells)-1 {
			io.WriteString(w, " ")
		}
	}
	w.Write([]byte{close})
}

func (v Value) String() string {
	var b strings.Builder
	v.WriteTo(&b)
	return b.String()
}
