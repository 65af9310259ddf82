// Package engine holds token-level helpers shared by the JSON entry points.
// This package is internal and not part of the public API.
package engine

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
)

// DuplicateKey is an object key that occurs more than once. Path is the JSON
// Pointer of the object holding it ("" for the root).
type DuplicateKey struct {
	Path string
	Key  string
}

// Pointer returns the JSON Pointer of the duplicated member.
func (d DuplicateKey) Pointer() string { return d.Path + "/" + escape(d.Key) }

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string
	next         int
	path         string
}

// FindDuplicateKeys scans one JSON document and reports every repeated key
// in document order. It does not validate the document; decode it first.
func FindDuplicateKeys(data []byte) ([]DuplicateKey, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var dups []DuplicateKey
	var stack []*frame
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return dups, nil
		}
		if err != nil {
			return dups, err
		}
		if d, ok := tok.(j.Delim); ok && (d == '}' || d == ']') {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
			top := stack[n-1]
			k, _ := tok.(string)
			if _, dup := top.keys[k]; dup {
				dups = append(dups, DuplicateKey{Path: top.path, Key: k})
			}
			top.keys[k] = struct{}{}
			top.key = k
			top.expectingKey = false
			continue
		}
		path := valuePath(stack)
		if d, ok := tok.(j.Delim); ok {
			switch d {
			case '{':
				stack = append(stack, &frame{object: true, keys: map[string]struct{}{}, expectingKey: true, path: path})
			case '[':
				stack = append(stack, &frame{path: path})
			}
		}
	}
}

// valuePath returns the pointer of the value about to start and advances
// the enclosing container.
func valuePath(stack []*frame) string {
	if len(stack) == 0 {
		return ""
	}
	top := stack[len(stack)-1]
	if top.object {
		top.expectingKey = true
		return top.path + "/" + escape(top.key)
	}
	p := top.path + "/" + strconv.Itoa(top.next)
	top.next++
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string { return pointerEscaper.Replace(s) }
