package emoji

// VariantTable maps each tone-capable identifier to its rendered variants.
// It is built once by NewVariantTable and must not be mutated afterwards.
type VariantTable map[ID]map[ToneSequence]string

// NewVariantTable expands every entry's variant rule.
func NewVariantTable(c *Catalog) VariantTable {
	table := make(VariantTable)
	if c == nil {
		return table
	}
	for _, entry := range c.entries {
		keys := entry.Tones.keys()
		if len(keys) == 0 {
			continue
		}
		variants := make(map[ToneSequence]string, len(keys))
		for _, tones := range keys {
			if rendered, ok := entry.Tones.render(entry.Default, tones); ok {
				variants[tones] = rendered
			}
		}
		table[entry.ID] = variants
	}
	return table
}

// Lookup returns the rendered sequence of id with tones applied.
func (t VariantTable) Lookup(id ID, tones ToneSequence) (string, bool) {
	variants, ok := t[id]
	if !ok {
		return "", false
	}
	rendered, ok := variants[tones]
	return rendered, ok
}

// Len returns the total number of tone variants across all identifiers.
func (t VariantTable) Len() int {
	n := 0
	for _, variants := range t {
		n += len(variants)
	}
	return n
}
