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

import "testing"

func TestReadPrints(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"42", "42"},
		{"-3.5", "-3.5"},
		{"foo", "foo"},
		{"(+ 1 2 3)", "(+ 1 2 3)"},
		{"{1 2 3}", "{1 2 3}"},
		{"(def {x} 42)", "(def {x} 42)"},
	}
	for _, tt := range tests {
		v, ok, err := Read(tt.in)
		if err != nil {
			t.Fatalf("Read(%q): unexpected error: %v", tt.in, err)
		}
		if tt.want == "" {
			if ok {
				t.Fatalf("Read(%q): expected no value, got %s", tt.in, v)
			}
			continue
		}
		if !ok {
			t.Fatalf("Read(%q): expected a value", tt.in)
		}
		if got := v.String(); got != tt.want {
			t.Errorf("Read(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadBareTopLevelIsAnError(t *testing.T) {
	if _, ok, err := Read("+ 1 2 3"); err == nil || ok {
		t.Fatalf("Read(\"+ 1 2 3\") = ok=%v err=%v, want a parse error", ok, err)
	}
}

func TestReadUnmatchedDelimiter(t *testing.T) {
	if _, _, err := Read("(+ 1 2"); err == nil {
		t.Fatalf("Read(\"(+ 1 2\") expected an error for unmatched delimiter")
	}
	if _, _, err := Read("{1 2"); err == nil {
		t.Fatalf("Read(\"{1 2\") expected an error for unmatched delimiter")
	}
}

func TestReadInvalidNumberIsAnErrorValue(t *testing.T) {
	v, ok, err := Read("1.2.3")
	if err != nil {
		t.Fatalf("Read(\"1.2.3\"): unexpected read error: %v", err)
	}
	if !ok || v.Kind != KindError {
		t.Fatalf("Read(\"1.2.3\") = %+v, want an Error value", v)
	}
}

func TestMinusFallsBackToSymbol(t *testing.T) {
	v, ok, err := Read("-")
	if err != nil || !ok {
		t.Fatalf("Read(\"-\"): ok=%v err=%v", ok, err)
	}
	if v.Kind != KindSymbol || v.Str != "-" {
		t.Fatalf("Read(\"-\") = %+v, want Symbol -", v)
	}
}
