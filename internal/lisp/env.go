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

// Env is a symbol table with a parent pointer; lookup walks toward the
// root, binding walks either to the current scope (Put) or all the way to
// the root (Def).
type Env struct {
	parent *Env
	vars   map[string]Value
}

func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Get looks up name starting in e and walking outward through parents,
// returning a clone of the bound value. An unbound symbol is reported as an
// Error value, not a Go error: it is ordinary evaluation data and must
// propagate through the same error-dominance rules as any other Error.
func (e *Env) Get(name string) Value {
	if v, ok := e.vars[name]; ok {
		return Clone(v)
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return NewError("Unbound symbol '%s'", name)
}

// Put binds name in e's own scope, shadowing any outer binding.
func (e *Env) Put(name string, v Value) {
	e.vars[name] = Clone(v)
}

// Def binds name in the root environment reached by following parent
// pointers from e, making the binding globally visible.
func (e *Env) Def(name string, v Value) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, v)
}

// Clone returns a new environment with the same parent and a deep copy of
// e's own bindings.
func (e *Env) Clone() *Env {
	ne := &Env{parent: e.parent, vars: make(map[string]Value, len(e.vars))}
	for k, v := range e.vars {
		ne.vars[k] = Clone(v)
	}
	return ne
}
