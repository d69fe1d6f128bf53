package badger

import (
	"fmt"
	"strings"
)

// Key layout. Entries live under vecent:<namespace>:<id>; namespaces
// must not contain the ':' separator (provider namespace keys are
// plain identifiers like "openai" or "gemma").
const entryPrefix = "vecent"

// makeEntryKey generates the key for an entry in a namespace.
func makeEntryKey(namespace, id string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", entryPrefix, namespace, id))
}

// makeNamespacePrefix generates the key prefix covering all entries
// in a namespace.
func makeNamespacePrefix(namespace string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", entryPrefix, namespace))
}

// namespaceFromKey extracts the namespace segment from an entry key.
// Returns false for keys that don't follow the entry layout.
func namespaceFromKey(key []byte) (string, bool) {
	rest, ok := strings.CutPrefix(string(key), entryPrefix+":")
	if !ok {
		return "", false
	}
	ns, _, ok := strings.Cut(rest, ":")
	if !ok {
		return "", false
	}
	return ns, true
}
