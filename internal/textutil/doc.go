// Package textutil provides text measurement and normalization helpers for
// subtitle layout.
//
// Widths are display widths rather than byte or rune counts so East Asian
// wide characters occupy two cells, matching how a renderer lays out
// monospaced subtitle text.
package textutil
