package triecodec

// record is the on-the-wire shape of a single trie node, matching spec.md
// §4.2: a hex "hash", a quoted boolean "isTerminal" ("true"/"false", with
// "on" accepted on read as a synonym for true), an optional free-form
// "source" debug annotation that readers must tolerate and ignore, and a
// "neighbors" array of decimal child-ID strings.
//
// The persisted format is declared opaque and versionable (spec.md §4.2):
// readers must not choke on records with extra fields, which is exactly
// what encoding/json's default unmarshal-into-struct behavior gives us for
// free, and is why this module reaches for the standard library's JSON
// support rather than a stricter/stronger-typed third-party codec (see
// DESIGN.md).
type record struct {
	Hash       string   `json:"hash"`
	IsTerminal string   `json:"isTerminal"`
	Source     string   `json:"source,omitempty"`
	Neighbors  []string `json:"neighbors"`
}
