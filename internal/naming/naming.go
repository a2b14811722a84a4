package naming

import (
	"path"
	"regexp"
	"strings"
)

// whitespaceRun matches ASCII whitespace, vertical tab, the Unicode space
// separators, line/paragraph separators and the BOM.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// DeriveID turns a display name into an item id: lowercase, each whitespace
// run replaced by a single underscore. Image paths and item ids both depend on
// this staying stable.
func DeriveID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// TrophyFolder maps a trophy type to its asset folder
// ("Creature Trophies" -> "creature").
func TrophyFolder(trophyType string) string {
	folder := strings.ToLower(trophyType)
	folder = strings.ReplaceAll(folder, trophyTypeSuffix, "")
	return strings.TrimSpace(folder)
}

// CosmeticFolder maps a cosmetic's first category level to its asset folder
// ("Back Bling" -> "back-bling"). Empty categories use DefaultCosmeticDir.
func CosmeticFolder(level1 string) string {
	if strings.TrimSpace(level1) == "" {
		return DefaultCosmeticDir
	}
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(level1)), "-")
}

// TrophyImagePath returns the relative image path of a trophy.
func TrophyImagePath(trophyType, id string) string {
	if id == "" {
		return FallbackImagePath
	}
	return path.Join(AssetRoot, TrophyAssetDir, TrophyFolder(trophyType), id+ImageExtension)
}

// CosmeticImagePath returns the relative image path of a cosmetic.
func CosmeticImagePath(level1, id string) string {
	if id == "" {
		return FallbackImagePath
	}
	return path.Join(AssetRoot, CosmeticAssetDir, CosmeticFolder(level1), id+ImageExtension)
}
