// Package archive packages a validated skill tree into a single .skill
// file (a zip archive). Output is reproducible: entries are sorted and
// timestamps fixed, so an unchanged tree always produces byte-identical
// bytes, and the archive is published atomically.
package archive
