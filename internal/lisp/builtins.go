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

import "fmt"

// declaration is a builtin's registered metadata, used by the :help REPL
// command and by the (help <function>) builtin.
type declaration struct {
	Name string
	Desc string
	Fn   BuiltinFunc
}

var registry = map[string]*declaration{}

func declare(env *Env, d *declaration) {
	registry[d.Name] = d
	env.Put(d.Name, NewBuiltin(d.Name, d.Desc, d.Fn))
}

// InstallBuiltins populates env with every builtin the language defines:
// arithmetic, list surgery, variable binding, comparison/branching and
// lambda construction.
func InstallBuiltins(env *Env) {
	installArith(env)
	installList(env)
	installVar(env)
	installCond(env)
	installLambda(env)
	installHelp(env)
}

func installHelp(env *Env) {
	declare(env, &declaration{
		Name: "help",
		Desc: "(help) lists every builtin; (help <function>) describes one",
		Fn: func(_ *Env, args []Value) Value {
			if len(args) == 0 {
				return NewSymbol(helpAll())
			}
			if len(args) != 1 {
				return arityError("help", len(args), 0, 1)
			}
			if args[0].Kind != KindFunction {
				return typeError("help", 0, args[0], KindName(KindFunction))
			}
			return NewSymbol(helpFor(args[0].Fun.Name))
		},
	})
}

// HelpAll and HelpFor back the REPL's :help command; they return plain text
// rather than writing to stdout directly, since the REPL owns the output
// channel.
func HelpAll() string { return helpAll() }

func HelpFor(name string) string { return helpFor(name) }

func helpAll() string {
	s := "Available functions:\n"
	for name, d := range registry {
		s += fmt.Sprintf("  %-6s %s\n", name, d.Desc)
	}
	return s
}

func helpFor(name string) string {
	d, ok := registry[name]
	if !ok {
		return fmt.Sprintf("no such function: %s", name)
	}
	return fmt.Sprintf("%s\n%s", d.Name, d.Desc)
}

func arityError(name string, got, min, max int) Value {
	if min == max {
		return NewError("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", name, got, min)
	}
	return NewError("Function '%s' passed incorrect number of arguments. Got %d, expected %d-%d.", name, got, min, max)
}

func typeError(name string, idx int, got Value, expected string) Value {
	return NewError("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", name, idx, KindName(got.Kind), expected)
}

func emptyError(name string, idx int) Value {
	return NewError("Function '%s' passed {} for argument %d.", name, idx)
}
