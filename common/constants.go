package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS matches ebiten's default tick rate.
	TPS = 60
)
