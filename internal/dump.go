package internal

import (
	"io"

	"gopkg.in/yaml.v3"
)

type tokenView struct {
	Kind    string      `yaml:"kind"`
	Lexeme  string      `yaml:"lexeme,omitempty"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

type tokenDump struct {
	Errors []string    `yaml:"errors,omitempty"`
	Tokens []tokenView `yaml:"tokens"`
}

// DumpTokens scans source and writes the tokens to w as YAML. Scan errors
// are listed in the document rather than printed.
func DumpTokens(source string, w io.Writer) error {
	state := newInterpreterState(nil)
	tokens := scan(state, source)

	dump := tokenDump{
		Tokens: make([]tokenView, len(tokens)),
	}
	for _, e := range state.errors {
		dump.Errors = append(dump.Errors, e.Error())
	}
	for i, tk := range tokens {
		dump.Tokens[i] = tokenView{
			Kind:    tk.token.String(),
			Lexeme:  tk.lexeme,
			Literal: tk.literal,
			Line:    tk.line,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dump); err != nil {
		return err
	}
	return enc.Close()
}
