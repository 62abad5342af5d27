// Package ptbr normalises Brazilian Portuguese formatted cells.
//
// Numbers use "." for thousands and "," for decimals. Canonical output
// keeps "," as the decimal separator and drops thousands separators so
// spreadsheets configured for pt-BR import the values as numbers.
package ptbr
