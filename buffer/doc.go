// Package buffer implements the plain-text document model: lines of runes,
// a clamped cursor, and the edit operations the editor drives.
//
// Coordinates are 0-based (Row, Col) in runes.
package buffer
