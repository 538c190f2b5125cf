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

func installList(env *Env) {
	declare(env, &declaration{
		Name: "list", Desc: "(list a b ...) packages its arguments as a Q-Expression",
		Fn: func(_ *Env, args []Value) Value {
			cells := append([]Value(nil), args...)
			return Value{Kind: KindQExpr, Cells: cells}
		},
	})
	declare(env, &declaration{
		Name: "head", Desc: "(head {a b c}) returns a one-element Q-Expression holding a",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) != 1 {
				return arityError("head", len(args), 1, 1)
			}
			if args[0].Kind != KindQExpr {
				return typeError("head", 0, args[0], KindName(KindQExpr))
			}
			if len(args[0].Cells) == 0 {
				return emptyError("head", 0)
			}
			return Value{Kind: KindQExpr, Cells: []Value{args[0].Cells[0]}}
		},
	})
	declare(env, &declaration{
		Name: "tail", Desc: "(tail {a b c}) returns a Q-Expression without its first element",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) != 1 {
				return arityError("tail", len(args), 1, 1)
			}
			if args[0].Kind != KindQExpr {
				return typeError("tail", 0, args[0], KindName(KindQExpr))
			}
			if len(args[0].Cells) == 0 {
				return emptyError("tail", 0)
			}
			cells := append([]Value(nil), args[0].Cells[1:]...)
			return Value{Kind: KindQExpr, Cells: cells}
		},
	})
	declare(env, &declaration{
		Name: "eval", Desc: "(eval {a b c}) evaluates a Q-Expression as an S-Expression",
		Fn: func(env *Env, args []Value) Value {
			if len(args) != 1 {
				return arityError("eval", len(args), 1, 1)
			}
			if args[0].Kind != KindQExpr {
				return typeError("eval", 0, args[0], KindName(KindQExpr))
			}
			return Eval(env, Value{Kind: KindSExpr, Cells: args[0].Cells})
		},
	})
	declare(env, &declaration{
		Name: "join", Desc: "(join {a} {b} ...) concatenates its Q-Expression arguments",
		Fn: func(_ *Env, args []Value) Value {
			var cells []Value
			for i, a := range args {
				if a.Kind != KindQExpr {
					return typeError("join", i, a, KindName(KindQExpr))
				}
				cells = append(cells, a.Cells...)
			}
			return Value{Kind: KindQExpr, Cells: cells}
		},
	})
}
