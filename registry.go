// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import "fmt"

// Descriptor identifies one doubling level of the Cayley-Dickson
// construction: its canonical name, level and dimension. Front-ends
// (§6) use [ByLevel] and [ByName] to resolve a user-supplied order or
// name to the algebra it names.
type Descriptor struct {
	Name       string
	Level      int
	Dimensions int
}

// Zero returns the zero exemplar of the descriptor's algebra, as a
// runtime Element.
func (d Descriptor) Zero() Element {
	return NewElement(d.Level, nil)
}

var registry [9]Descriptor

var registryByName map[string]Descriptor

func init() {
	names := [...]string{
		"Real", "Complex", "Quaternion", "Octonion", "Sedenion",
		"Pathion", "Chingon", "Routon", "Voudon",
	}
	registryByName = make(map[string]Descriptor, len(names))
	for level, name := range names {
		d := Descriptor{Name: name, Level: level, Dimensions: 1 << uint(level)}
		registry[level] = d
		registryByName[name] = d
	}
}

// ByLevel returns the descriptor for the given doubling level (0..8).
func ByLevel(level int) (Descriptor, error) {
	if level < 0 || level >= len(registry) {
		return Descriptor{}, fmt.Errorf("%w: level %d", ErrNotSupported, level)
	}
	return registry[level], nil
}

// ByName returns the descriptor for the given canonical algebra name,
// e.g. "Quaternion".
func ByName(name string) (Descriptor, error) {
	d, ok := registryByName[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: name %q", ErrNotSupported, name)
	}
	return d, nil
}

// Names returns the canonical names of every registered level, in
// level order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}
