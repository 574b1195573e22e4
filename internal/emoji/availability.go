package emoji

// alwaysAvailableBefore marks the first emoji revision that needs a platform check.
var alwaysAvailableBefore = V(15, 0)

// minimumPlatform lists, per emoji revision, the first platform release that
// ships glyphs for it. Revisions missing from the table are never renderable.
var minimumPlatform = []struct {
	introduced Version
	platform   Version
}{
	{introduced: V(15, 0), platform: V(16, 4)},
	{introduced: V(15, 1), platform: V(17, 4)},
	{introduced: V(16, 0), platform: V(18, 4)},
}

// IsRenderable reports whether an emoji introduced in the given revision
// renders on the given platform release.
func IsRenderable(introduced, platform Version) bool {
	if introduced.Less(alwaysAvailableBefore) {
		return true
	}
	for _, row := range minimumPlatform {
		if row.introduced == introduced {
			return platform.AtLeast(row.platform)
		}
	}
	return false
}

// GateTier returns the newest platform threshold from the availability table
// that platform meets, or the zero Version when it meets none. Platforms with
// the same tier render exactly the same entries.
func GateTier(platform Version) Version {
	var tier Version
	for _, row := range minimumPlatform {
		if platform.AtLeast(row.platform) && tier.Less(row.platform) {
			tier = row.platform
		}
	}
	return tier
}

// Gate checks catalog entries against one platform release.
type Gate struct {
	Platform Version
}

// NewGate returns a gate for platform.
func NewGate(platform Version) Gate {
	return Gate{Platform: platform}
}

// Allows reports whether entry renders on the gate's platform.
func (g Gate) Allows(entry Entry) bool {
	return IsRenderable(entry.Introduced, g.Platform)
}

// AllowsID looks id up in c and checks it. Unknown identifiers are rejected.
func (g Gate) AllowsID(c *Catalog, id ID) bool {
	entry, ok := c.Entry(id)
	if !ok {
		return false
	}
	return g.Allows(entry)
}
