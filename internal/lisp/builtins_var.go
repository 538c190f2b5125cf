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

func installVar(env *Env) {
	declare(env, &declaration{
		Name: "def", Desc: "(def {x y} 1 2) binds x and y in the root environment",
		Fn: bindFn("def", true),
	})
	declare(env, &declaration{
		Name: "=", Desc: "(= {x y} 1 2) binds x and y in the calling environment",
		Fn: bindFn("=", false),
	})
}

// bindFn implements both def (writes the root environment) and = (writes
// the calling environment): the first argument is a Q-Expression of
// Symbols, and the remaining arguments are the values bound to them
// pairwise, in order.
func bindFn(name string, toRoot bool) BuiltinFunc {
	return func(env *Env, args []Value) Value {
		if len(args) == 0 {
			return NewError("Function '%s' passed incorrect number of arguments. Got 0, expected at least 1.", name)
		}
		if args[0].Kind != KindQExpr {
			return typeError(name, 0, args[0], KindName(KindQExpr))
		}
		syms := args[0].Cells
		for _, s := range syms {
			if s.Kind != KindSymbol {
				return NewError("Function '%s' cannot define non-symbol. Got %s, Expected Symbol.", name, KindName(s.Kind))
			}
		}
		vals := args[1:]
		if len(vals) != len(syms) {
			return NewError("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", name, len(vals), len(syms))
		}
		for i, s := range syms {
			if toRoot {
				env.Def(s.Str, vals[i])
			} else {
				env.Put(s.Str, vals[i])
			}
		}
		return Value{Kind: KindSExpr}
	}
}
