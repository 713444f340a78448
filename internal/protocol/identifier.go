package protocol

import (
	"fmt"
	"io"
	"strings"
)

// Identifier is a namespaced resource name ("minecraft:ask_server") used for
// suggestion providers. On the wire it is an ordinary bounded string; Validate
// is for callers that build identifiers from untrusted input.
type Identifier string

// Validate checks the namespace:path shape. The codec itself does not call
// this; wire validity is only bounds + UTF-8.
func (id Identifier) Validate() error {
	ns, path, ok := strings.Cut(string(id), ":")
	if !ok || ns == "" || path == "" {
		return fmt.Errorf("protocol: identifier %q is not namespace:path", string(id))
	}
	return nil
}

// Write encodes the identifier as a bounded string.
func (id Identifier) Write(w io.Writer) error {
	return WriteString(w, string(id), 0, NameMaxChars)
}

// ReadIdentifier decodes a bounded-string identifier.
func ReadIdentifier(r Reader) (Identifier, error) {
	s, err := ReadString(r, 0, NameMaxChars)
	if err != nil {
		return "", err
	}
	return Identifier(s), nil
}
