// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> lexer -> parser -> format -> compare). They guard against panics,
// hangs and rewrites that the comparator rejects on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, парсер и принтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/format, internal/compare, internal/testkit.
package fuzztests
