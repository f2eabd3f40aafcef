// Copyright ©2024 The Cayley-Dickson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cd

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// letterTable is the fixed basis-letter translation for dimensions up
// to 32: index k names e_k for k in 0..31, with index 0 naming the
// real unit.
var letterTable = strings.Fields("1 i j k L I J K m p q r M P Q R n s t u N S T U o v w x O V W X")

// Shape selects the output form [Named] and [Matrix] produce.
type Shape int

const (
	// AsString formats a term as a single human-readable string, e.g. "-3i".
	AsString Shape = iota
	// AsObject formats a term as a map from basis label to coefficient.
	AsObject
	// AsTuple formats a term as a (coefficient, label) pair.
	AsTuple
	// AsList formats a term as the full coefficient slice.
	AsList
	// AsIndex formats a term as a signed 1-based basis index.
	AsIndex
)

// Options controls how [Named] and [Matrix] label and shape basis
// terms.
type Options struct {
	// Element is the symbolic element prefix used when Translate is
	// false or the dimension exceeds the letter table, e.g. "e" to
	// produce "e_3". Defaults to "e".
	Element string
	// Indices is the letter translation table to use in place of the
	// default [letterTable] when Translate is true.
	Indices []string
	// Translate selects letter names ("i", "j", "k", ...) over
	// symbolic e_k names when the dimension is at most 32.
	Translate bool
	// Shape selects the output form; see the Shape constants.
	Shape Shape
	// ShowPlus prefixes positive terms with "+".
	ShowPlus bool
}

// DefaultOptions returns the conventional formatting options: letter
// translation, "e" as the symbolic fallback prefix, string output, no
// leading "+".
func DefaultOptions() Options {
	return Options{Element: "e", Translate: true, Shape: AsString}
}

func (o Options) indices() []string {
	if o.Indices != nil {
		return o.Indices
	}
	return letterTable
}

func (o Options) element() string {
	if o.Element != "" {
		return o.Element
	}
	return "e"
}

// label returns the symbolic or translated name for basis position k
// (0-based) at the given dimension.
func label(k, dim int, o Options) string {
	if o.Translate && dim <= 32 && k < len(o.indices()) {
		return o.indices()[k]
	}
	if k == 0 {
		return "1"
	}
	return fmt.Sprintf("%s_%d", o.element(), k)
}

// Indexes returns the basis vector e_k of algebra A: 1 at position k,
// 0 elsewhere.
func Indexes[A Value[A, F], F Field](k int) A {
	var zero A
	e := zero.Elems()
	if k >= 0 && k < len(e) {
		e[k] = 1
	}
	return *(*A)(unsafe.Pointer(&e[0]))
}

// Values returns a copy of x with every coefficient other than
// position k zeroed.
func Values[A Value[A, F], F Field](x A, k int) A {
	e := Flatten[A, F](x)
	return Must(Unflatten[A, F](valuesElement(e, k)))
}

// Named formats e as a single basis-indexed term according to opts.
// e is expected to be basis-aligned: all coefficients zero except
// possibly one. The term's sign is taken from the first non-zero
// coefficient; a wholly-zero e formats as "0" in the AsString and
// AsIndex shapes, "(0, )" as AsTuple, "{}" as AsObject and an all-zero
// list as AsList. The coefficient's
// magnitude is omitted from string output when it is exactly 1.
func Named(e Element, opts Options) string {
	idx, coeff := firstNonZero(e)
	return namedTerm(idx, coeff, e.Dimensions(), opts)
}

// namedTerm formats a single coefficient at basis position idx,
// shared by [Named] and the product formatters in products.go.
func namedTerm(idx int, coeff float64, dim int, opts Options) string {
	switch opts.Shape {
	case AsIndex:
		return signedIndex(idx, coeff, dim)
	case AsList:
		v := make([]string, dim)
		for i := range v {
			v[i] = "0"
		}
		if coeff != 0 {
			v[idx] = strconv.FormatFloat(coeff, 'g', -1, 64)
		}
		return "[" + strings.Join(v, " ") + "]"
	case AsTuple:
		if coeff == 0 {
			return "(0, )"
		}
		return fmt.Sprintf("(%s, %s)", strconv.FormatFloat(coeff, 'g', -1, 64), label(idx, dim, opts))
	case AsObject:
		if coeff == 0 {
			return "{}"
		}
		return fmt.Sprintf("{%s: %s}", label(idx, dim, opts), strconv.FormatFloat(coeff, 'g', -1, 64))
	default: // AsString
		return stringTerm(idx, coeff, dim, opts)
	}
}

func stringTerm(idx int, coeff float64, dim int, opts Options) string {
	if coeff == 0 {
		return "0"
	}
	sign := ""
	switch {
	case coeff < 0:
		sign = "-"
	case opts.ShowPlus:
		sign = "+"
	}
	mag := ""
	if a := absFloat(coeff); a != 1 {
		mag = strconv.FormatFloat(a, 'g', -1, 64)
	}
	if idx == 0 {
		if mag == "" {
			mag = "1"
		}
		return sign + mag
	}
	return sign + mag + label(idx, dim, opts)
}

// signedIndex returns the 1-based signed basis index of a term: the
// position idx+1, negated if coeff is negative. A zero coefficient is
// reported as 0.
func signedIndex(idx int, coeff float64, dim int) string {
	if coeff == 0 {
		return "0"
	}
	n := idx + 1
	if coeff < 0 {
		n = -n
	}
	return strconv.Itoa(n)
}

func firstNonZero(e Element) (idx int, coeff float64) {
	for i, v := range e.coeffs {
		if v != 0 {
			return i, v
		}
	}
	return 0, 0
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Label returns the symbolic or translated name of unsigned basis
// position k (0-based) in a level-level algebra, per opts. It is the
// label half of [Named] exposed standalone for callers, such as the
// rotation analyzer, that work from a level number rather than a
// concrete algebra type.
func Label(level, k int, opts Options) string {
	return label(k, 1<<uint(level), opts)
}

// ParseLabel resolves a basis label back to its 0-based coefficient
// position at the given doubling level: the inverse of [Label]. It
// accepts a translated letter ("i") when opts.Translate is set and the
// dimension is at most 32, or a symbolic "e_k" name built from
// opts.Element, the same two forms [Label] produces. It is exposed
// standalone, alongside [Label], for callers such as the rotation
// analyzer that accept basis selections as strings rather than
// indices.
func ParseLabel(level int, s string, opts Options) (int, error) {
	dim := 1 << uint(level)
	if opts.Translate && dim <= 32 {
		for i, l := range opts.indices()[:min(dim, len(opts.indices()))] {
			if l == s {
				return i, nil
			}
		}
	}
	if n, ok := strings.CutPrefix(s, opts.element()+"_"); ok {
		i, err := strconv.Atoi(n)
		if err == nil && i >= 0 && i < dim {
			return i, nil
		}
	}
	return 0, fmt.Errorf("cd: unrecognized basis label %q", s)
}

// Matrix returns the d x d Cayley multiplication table of algebra A,
// entry (i, j) being Named(e_i * e_j, opts).
func Matrix[A Value[A, F], F Field](opts Options) [][]string {
	var zero A
	dim := zero.Dimensions()
	level := zero.Level()
	m := make([][]string, dim)
	for i := range m {
		row := make([]string, dim)
		for j := range row {
			ei, _ := indexElement(level, i)
			ej, _ := indexElement(level, j)
			p, err := mulElement(ei, ej)
			if err != nil {
				panic(err)
			}
			row[j] = Named(p, opts)
		}
		m[i] = row
	}
	return m
}

// IndexMatrix returns the d x d signed-index multiplication table of
// algebra A: entry (i, j) is a non-zero signed integer in ±(1..d),
// matching Matrix with opts.Shape set to AsIndex. It is the input the
// heatmap-renderer collaborator contract (§6) expects.
func IndexMatrix[A Value[A, F], F Field]() [][]int {
	opts := DefaultOptions()
	opts.Shape = AsIndex
	strs := Matrix[A, F](opts)
	m := make([][]int, len(strs))
	for i, row := range strs {
		m[i] = make([]int, len(row))
		for j, s := range row {
			n, err := strconv.Atoi(s)
			if err != nil {
				panic(err)
			}
			m[i][j] = n
		}
	}
	return m
}

// CayleyIndexMatrix returns the d x d signed-index multiplication
// table (see [IndexMatrix]) for the algebra at the given doubling
// level, resolved at runtime through the same level-dispatch table as
// the rest of the [Element] machinery. It lets the rotation analyzer
// obtain a Cayley table without fixing a concrete algebra type at
// compile time.
func CayleyIndexMatrix(level int) ([][]int, error) {
	switch level {
	case 0:
		return IndexMatrix[Real, float64](), nil
	case 1:
		return IndexMatrix[Complex, float64](), nil
	case 2:
		return IndexMatrix[Quaternion, float64](), nil
	case 3:
		return IndexMatrix[Octonion, float64](), nil
	case 4:
		return IndexMatrix[Sedenion, float64](), nil
	case 5:
		return IndexMatrix[Pathion, float64](), nil
	case 6:
		return IndexMatrix[Chingon, float64](), nil
	case 7:
		return IndexMatrix[Routon, float64](), nil
	case 8:
		return IndexMatrix[Voudon, float64](), nil
	default:
		return nil, ErrNotSupported
	}
}
