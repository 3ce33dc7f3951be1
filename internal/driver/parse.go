package driver

import (
	"os"

	"mamushi/internal/ast"
	"mamushi/internal/diag"
	"mamushi/internal/parser"
	"mamushi/internal/source"
)

type ParseResult struct {
	File   *source.File
	Module *ast.Module
	Err    error
}

// Parse reads path and builds its syntax tree.
func Parse(path string) (*ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, diag.Newf(diag.IOReadFailed, path, "%v", err)
	}
	file := source.NewFile(path, data)
	mod, parseErr := parser.Parse(file)
	return &ParseResult{File: file, Module: mod, Err: parseErr}, nil
}
