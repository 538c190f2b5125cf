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

func installLambda(env *Env) {
	declare(env, &declaration{
		Name: "\\", Desc: "(\\ {x y} {+ x y}) constructs a Function",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) != 2 {
				return arityError("\\", len(args), 2, 2)
			}
			if args[0].Kind != KindQExpr {
				return typeError("\\", 0, args[0], KindName(KindQExpr))
			}
			if args[1].Kind != KindQExpr {
				return typeError("\\", 1, args[1], KindName(KindQExpr))
			}
			for _, c := range args[0].Cells {
				if c.Kind != KindSymbol {
					return NewError("Cannot define non-symbol. Got %s, Expected Symbol.", KindName(c.Kind))
				}
			}
			return NewLambda(args[0], args[1], NewEnv())
		},
	})
}
