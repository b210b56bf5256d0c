// Package filehandler provides a handler that writes entries to a file
// rotated by size, with backup pruning by count and age. Rotation is
// delegated to lumberjack.
package filehandler
