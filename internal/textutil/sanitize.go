// Package textutil repairs mis-decoded text coming back from job boards.
// Scraped descriptions regularly arrive as double-encoded UTF-8 ("â€™"
// instead of an apostrophe) or with literal HTML entities left in.
package textutil

import "strings"

// Replacement table, applied in order in a single pass. Longer artifacts
// must come before their prefixes ("â€™" before "â€") or the shorter rule
// eats the lead bytes. No replacement output is itself a trigger for a
// later rule, which keeps Sanitize idempotent.
var repairs = []string{
	// double-encoded punctuation
	"â€™", "'", // â€™ right single quote
	"â€œ", `"`, // â€œ left double quote
	"â€", `"`, // â€ + 0x9d right double quote
	"â€“", "–", // en dash
	"â€”", "—", // em dash
	"â€¦", "…", // ellipsis
	"â€", `"`, // bare â€ remnant
	// double-encoded Latin-1 letters
	"Ã¡", "á", // á
	"Ã©", "é", // é
	"Ã­", "í", // í
	"Ã³", "ó", // ó
	"Ãº", "ú", // ú
	"Ã±", "ñ", // ñ
	"Ã‰", "É", // É
	"Ã“", "Ó", // Ó
	"Ãš", "Ú", // Ú
	"Ã‘", "Ñ", // Ñ
	// stray  from a mis-decoded non-breaking space
	"Â ", " ",
	"Â", "",
	// HTML entities
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
}

var repairer = strings.NewReplacer(repairs...)

// Sanitize replaces known mojibake artifacts and HTML entities with the
// intended characters. Pure, never fails; unknown artifacts pass through.
func Sanitize(s string) string {
	return repairer.Replace(s)
}

// CleanText collapses whitespace runs (including non-breaking spaces) into
// single spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
