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

func installArith(env *Env) {
	declare(env, &declaration{Name: "+", Desc: "(+ x y ...) sums its arguments", Fn: arith("+")})
	declare(env, &declaration{Name: "-", Desc: "(- x) negates x; (- x y ...) subtracts left to right", Fn: arith("-")})
	declare(env, &declaration{Name: "*", Desc: "(* x y ...) multiplies its arguments", Fn: arith("*")})
	declare(env, &declaration{Name: "/", Desc: "(/ x y ...) divides left to right", Fn: arith("/")})
	declare(env, &declaration{Name: "%", Desc: "(% x y ...) takes the remainder left to right", Fn: arith("%")})
	declare(env, &declaration{Name: "max", Desc: "(max x y ...) returns the largest argument", Fn: arith("max")})
	declare(env, &declaration{Name: "min", Desc: "(min x y ...) returns the smallest argument", Fn: arith("min")})
}

// arith implements the shared reduce-left-to-right shape of + - * / % max
// min: every argument must be a Number, - negates a single argument, and /
// and % report "Division by zero!" rather than producing Inf/NaN.
func arith(name string) BuiltinFunc {
	return func(_ *Env, args []Value) Value {
		for i, a := range args {
			if a.Kind != KindNumber {
				return typeError(name, i, a, KindName(KindNumber))
			}
		}
		if len(args) == 0 {
			return NewError("Function '%s' passed incorrect number of arguments. Got 0, expected at least 1.", name)
		}
		x := args[0].Num
		if name == "-" && len(args) == 1 {
			return NewNumber(-x)
		}
		for _, a := range args[1:] {
			y := a.Num
			switch name {
			case "+":
				x += y
			case "-":
				x -= y
			case "*":
				x *= y
			case "/":
				if y == 0 {
					return NewError("Division by zero!")
				}
				x /= y
			case "%":
				iy := int64(y)
				if iy == 0 {
					return NewError("Division by zero!")
				}
				x = float64(int64(x) % iy)
			case "max":
				if y > x {
					x = y
				}
			case "min":
				if y < x {
					x = y
				}
			}
		}
		return NewNumber(x)
	}
}
