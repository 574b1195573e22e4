package emoji

import "slices"

// Index resolves rendered sequences back to structured variants. It is built
// once by NewIndex and is safe for concurrent use; nothing mutates it.
type Index struct {
	catalog  *Catalog
	variants VariantTable
	reverse  map[string]Variant
}

// NewIndex flattens the catalog and its variant table into a reverse index.
//
// Tone variants are inserted first in declaration order, so a later variant
// replaces an earlier one rendering the same string. Default sequences are
// inserted afterwards and replace colliding tone variants, but never an
// earlier default.
func NewIndex(c *Catalog) *Index {
	if c == nil {
		c = &Catalog{byID: map[ID]int{}, byDefault: map[string]ID{}}
	}
	variants := NewVariantTable(c)
	reverse := make(map[string]Variant, len(c.entries)+variants.Len())

	for _, entry := range c.entries {
		for _, tones := range entry.Tones.keys() {
			rendered, ok := variants.Lookup(entry.ID, tones)
			if !ok {
				continue
			}
			reverse[rendered] = Variant{Base: entry.ID, Tones: tones, Rendered: rendered}
		}
	}
	for _, entry := range c.entries {
		if existing, ok := reverse[entry.Default]; ok && !existing.HasTones() {
			continue
		}
		reverse[entry.Default] = Variant{Base: entry.ID, Rendered: entry.Default}
	}

	return &Index{
		catalog:  c,
		variants: variants,
		reverse:  reverse,
	}
}

// Catalog returns the catalog the index was built from.
func (ix *Index) Catalog() *Catalog { return ix.catalog }

// VariantTable returns the expanded variant table. Callers must not modify it.
func (ix *Index) VariantTable() VariantTable { return ix.variants }

// Entry returns the catalog entry for id.
func (ix *Index) Entry(id ID) (Entry, bool) { return ix.catalog.Entry(id) }

// Sorted returns a copy of ids in catalog sort order.
func (ix *Index) Sorted(ids []ID) []ID {
	out := slices.Clone(ids)
	ix.catalog.Sort(out)
	return out
}

// Len returns the number of distinct rendered sequences known to the index.
func (ix *Index) Len() int { return len(ix.reverse) }

// Resolve parses a rendered sequence. Strings that are neither a known variant
// nor a bare default sequence are not emoji and yield false.
func (ix *Index) Resolve(rendered string) (Variant, bool) {
	if v, ok := ix.reverse[rendered]; ok {
		return v, true
	}
	if id, ok := ix.catalog.Lookup(rendered); ok {
		return Variant{Base: id, Rendered: rendered}, true
	}
	return Variant{}, false
}

// Variant derives the variant of id with the given tones. A zero tone sequence
// yields the bare variant.
func (ix *Index) Variant(id ID, tones ToneSequence) (Variant, bool) {
	entry, ok := ix.catalog.Entry(id)
	if !ok {
		return Variant{}, false
	}
	if tones.IsZero() {
		return Variant{Base: id, Rendered: entry.Default}, true
	}
	rendered, ok := ix.variants.Lookup(id, tones)
	if !ok {
		return Variant{}, false
	}
	return Variant{Base: id, Tones: tones, Rendered: rendered}, true
}

// Variants lists the bare variant of id followed by its tone variants in
// rank order.
func (ix *Index) Variants(id ID) []Variant {
	entry, ok := ix.catalog.Entry(id)
	if !ok {
		return nil
	}
	keys := entry.Tones.keys()
	out := make([]Variant, 0, len(keys)+1)
	out = append(out, Variant{Base: id, Rendered: entry.Default})
	for _, tones := range keys {
		if rendered, ok := ix.variants.Lookup(id, tones); ok {
			out = append(out, Variant{Base: id, Tones: tones, Rendered: rendered})
		}
	}
	return out
}

// HasSkinToneOptions reports whether id offers tone variants.
func (ix *Index) HasSkinToneOptions(id ID) bool {
	return len(ix.variants[id]) > 0
}

// CompareVariants orders variants by catalog sort order, then by tone
// sequence. It is a total order over the variants produced by the index.
func (ix *Index) CompareVariants(a, b Variant) int {
	oa, okA := ix.catalog.SortOrder(a.Base)
	ob, okB := ix.catalog.SortOrder(b.Base)
	switch {
	case okA && okB && oa != ob:
		if oa < ob {
			return -1
		}
		return 1
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case !okA && !okB && a.Base != b.Base:
		if a.Base < b.Base {
			return -1
		}
		return 1
	}
	return a.Tones.compare(b.Tones)
}
