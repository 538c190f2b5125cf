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

func boolNum(b bool) Value {
	if b {
		return NewNumber(1)
	}
	return NewNumber(0)
}

func installCond(env *Env) {
	ordering := map[string]func(x, y float64) bool{
		">":  func(x, y float64) bool { return x > y },
		"<":  func(x, y float64) bool { return x < y },
		">=": func(x, y float64) bool { return x >= y },
		"<=": func(x, y float64) bool { return x <= y },
	}
	for name, cmp := range ordering {
		name, cmp := name, cmp
		declare(env, &declaration{
			Name: name, Desc: "(" + name + " x y) compares two Numbers",
			Fn: func(_ *Env, args []Value) Value {
				if len(args) != 2 {
					return arityError(name, len(args), 2, 2)
				}
				for i, a := range args {
					if a.Kind != KindNumber {
						return typeError(name, i, a, KindName(KindNumber))
					}
				}
				return boolNum(cmp(args[0].Num, args[1].Num))
			},
		})
	}

	declare(env, &declaration{
		Name: "==", Desc: "(== a b) tests structural equality",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) != 2 {
				return arityError("==", len(args), 2, 2)
			}
			return boolNum(Equal(args[0], args[1]))
		},
	})
	declare(env, &declaration{
		Name: "!=", Desc: "(!= a b) tests structural inequality",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) != 2 {
				return arityError("!=", len(args), 2, 2)
			}
			return boolNum(!Equal(args[0], args[1]))
		},
	})

	declare(env, &declaration{
		Name: "if", Desc: "(if cond {then...} {else...}) evaluates one branch",
		Fn: func(env *Env, args []Value) Value {
			if len(args) != 3 {
				return arityError("if", len(args), 3, 3)
			}
			if args[0].Kind != KindNumber {
				return typeError("if", 0, args[0], KindName(KindNumber))
			}
			idx := 2
			if args[0].Num != 0 {
				idx = 1
			}
			branch := args[idx]
			if branch.Kind != KindQExpr {
				return typeError("if", idx, branch, KindName(KindQExpr))
			}
			return Eval(env, Value{Kind: KindSExpr, Cells: branch.Cells})
		},
	})
}
