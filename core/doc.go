// Package core defines the types shared by every devlog package.
//
// Level orders entries by severity, Entry is a single emitted record
// and Field is a typed key/value pair attached to an entry. The
// decorators in the root package only ever produce Entries; handlers
// and formatters only ever consume them.
//
// Entries are pooled. A Logger takes one with GetEntry, hands it to
// its handlers and returns it with PutEntry once every handler has
// reported that it no longer holds a reference.
package core
