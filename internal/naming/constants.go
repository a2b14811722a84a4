package naming

// Asset layout
const (
	AssetRoot          = "assets"
	TrophyAssetDir     = "trophies"
	CosmeticAssetDir   = "cosmetics"
	ImageExtension     = ".png"
	FallbackImagePath  = "assets/cooking.png"
	DefaultCosmeticDir = "outfit"
	trophyTypeSuffix   = " trophies"
)
