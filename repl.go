package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".orth_history"
	promptMain  = "orth> "
	promptCont  = "  ... "
)

// repl runs an interactive session, one entry at a time. An entry spans
// several lines while it has an unclosed quotation.
func (h host) repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}

	var entry strings.Builder
	for n := 1; ; {
		prompt := promptMain
		if entry.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			entry.Reset()
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		} else if err != nil {
			h.log.Errorf("%v", err)
			break
		}

		entry.WriteString(line)
		entry.WriteByte('\n')
		src := entry.String()
		if openQuotations(src) > 0 {
			continue
		}
		entry.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}

		ln.AppendHistory(strings.TrimSpace(strings.ReplaceAll(src, "\n", " ")))
		h.run(fmt.Sprintf("<repl#%v>", n), src)
		n++
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}
}

// openQuotations counts quotation markers left open in src; text that does
// not tokenize counts as complete so that its error gets reported.
func openQuotations(src string) (open int) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0
	}
	for _, tok := range toks {
		if tok.Kind != WordToken {
			continue
		}
		switch tok.Text {
		case "{":
			open++
		case "}":
			if open > 0 {
				open--
			}
		}
	}
	return open
}
