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

// Package repl implements the interactive line reader, history and logging
// around the lisp package's evaluator. None of this belongs to the
// Language: it is the ambient shell that reads one line, hands it to
// lisp.Read/lisp.Eval, and prints what comes back.
package repl

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/google/uuid"

	"github.com/launix-de/lissp/internal/lisp"
)

const (
	banner      = "Lissp Version 0.1.0"
	prompt      = "lissp> "
	historyFile = ".lissp_history"
)

// REPL owns the root environment, the optional execution-trace log, and the
// readline instance for one interactive session.
type REPL struct {
	env     *lisp.Env
	logger  *log.Logger
	logFile *os.File
}

// New builds a REPL with a fresh root environment seeded with every
// builtin. If logPath is non-empty, every evaluated line is appended to it.
func New(logPath string) (*REPL, error) {
	env := lisp.NewEnv()
	lisp.InstallBuiltins(env)
	r := &REPL{env: env}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		r.logFile = f
		r.logger = log.New(f, "", log.LstdFlags)
	}
	return r, nil
}

// Run prints the startup banner and loops: read a line, evaluate it in the
// root environment, print the result, until SIGINT or EOF.
func (r *REPL) Run() error {
	sessionID := uuid.NewString()
	fmt.Println(banner)
	fmt.Println("Press CTRL+C to exit")
	fmt.Println("session " + sessionID)
	if r.logger != nil {
		r.logger.Printf("session %s", sessionID)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	onexit.Register(func() {
		rl.Close()
		if r.logFile != nil {
			r.logFile.Close()
		}
	})

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			break
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.handleCommand(line) {
			continue
		}
		r.evalLine(line)
	}
	return nil
}

// handleCommand recognizes the :help and :quit REPL commands, which live
// outside the Language's grammar entirely. It reports whether line was
// handled as a command.
func (r *REPL) handleCommand(line string) bool {
	switch {
	case line == ":quit":
		os.Exit(0)
		return true
	case line == ":help":
		fmt.Println(lisp.HelpAll())
		return true
	case strings.HasPrefix(line, ":help "):
		name := strings.TrimSpace(strings.TrimPrefix(line, ":help "))
		fmt.Println(lisp.HelpFor(name))
		return true
	default:
		return false
	}
}

func (r *REPL) evalLine(line string) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Println("panic:", rec)
		}
	}()

	v, ok, err := lisp.Read(line)
	if err != nil {
		fmt.Println("Error:", err)
		if r.logger != nil {
			r.logger.Printf("%s => read error: %v", line, err)
		}
		return
	}
	if !ok {
		return
	}

	result := lisp.Eval(r.env, v)
	fmt.Println(result.String())
	if r.logger != nil {
		r.logger.Printf("%s => %s", line, result.String())
	}
}
