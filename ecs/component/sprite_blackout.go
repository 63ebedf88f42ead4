package component

// SpriteBlackout draws a sprite as a dark silhouette. Lost hearts use it.
type SpriteBlackout struct{}

var SpriteBlackoutComponent = NewComponent[SpriteBlackout]()
