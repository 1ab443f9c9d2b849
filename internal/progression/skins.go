package progression

// DefaultSkinID is the fallback skin, always owned.
const DefaultSkinID = "classic"

// Skin is one cosmetic ball skin. Premium skins can also be granted
// through the monetization hooks instead of coins.
type Skin struct {
	ID      string
	Name    string
	Cost    int // Coin price; 0 means owned from the start
	Premium bool
	Glyph   rune // How the ball renders with this skin
}

// SkinCatalog lists every purchasable skin in store order.
func SkinCatalog() []Skin {
	return []Skin{
		{ID: DefaultSkinID, Name: "Classic", Cost: 0, Glyph: '⚽'},
		{ID: "gold", Name: "Golden Ball", Cost: 250, Glyph: '◉'},
		{ID: "neon", Name: "Neon", Cost: 600, Glyph: '✹'},
		{ID: "galaxy", Name: "Galaxy", Cost: 1500, Premium: true, Glyph: '✪'},
	}
}

// SkinByID looks up a catalog skin. The second return is false for
// unknown ids.
func SkinByID(id string) (Skin, bool) {
	for _, s := range SkinCatalog() {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}
