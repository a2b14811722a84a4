package domain

// RawItem is an item record as decoded from a data file, before
// normalization. Only the item loader and normalizer look inside it.
type RawItem map[string]any
