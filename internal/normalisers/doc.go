// Package normalisers groups the stages that turn decoded markup into
// canonical cell values. The html package extracts the screener table
// and the ptbr package converts pt-BR numbers.
package normalisers
