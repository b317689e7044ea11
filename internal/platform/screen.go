package platform

// Screen size assumed when the desktop cannot be queried.
const (
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
)
