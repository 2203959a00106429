// Package id generates the ids of conversations and gateway connections.
// They are xids: 20 lowercase base32 characters, roughly sortable by creation time.
package id

import "github.com/rs/xid"

const encodedLen = 20

func Generate() string {
	return xid.New().String()
}

// Valid reports whether s is a non zero xid.
func Valid(s string) bool {
	if len(s) != encodedLen {
		return false
	}

	id, err := xid.FromString(s)
	return err == nil && !id.IsZero()
}
