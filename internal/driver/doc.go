// Package driver runs the formatting pipeline over files on disk.
//
// Назначение: собрать файлы, прогнать каждый через read -> parse -> format ->
// compare -> write в пуле воркеров и свести итог в Report.
// Не делает: не печатает диагностики и не разбирает флаги (это cmd/mamushi).
// Зависимости: x/sync/errgroup, zerolog, msgpack (кэш), internal/config.
package driver
