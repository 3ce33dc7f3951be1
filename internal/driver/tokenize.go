package driver

import (
	"os"

	"mamushi/internal/diag"
	"mamushi/internal/lexer"
	"mamushi/internal/source"
	"mamushi/internal/token"
)

type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
	Err    error // lexing diagnostic; Tokens holds what was read before it
}

// Tokenize reads path and lexes it to EOF or the first error.
func Tokenize(path string) (*TokenizeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Newf(diag.IOReadFailed, path, "%v", err)
	}
	file := source.NewFile(path, data)
	tokens, lexErr := lexer.Tokenize(file)
	return &TokenizeResult{File: file, Tokens: tokens, Err: lexErr}, nil
}
