package palette

// Platform standard colors the two "default apple" entries alias. Values are
// the stock UIKit ones: the text field placeholder gray (#C7C7CD) and the
// default tint blue (#007AFF).
var (
	systemPlaceholderGray = Color{R: 0xc7, G: 0xc7, B: 0xcd, A: 0xff}
	systemTintBlue        = Color{R: 0x00, G: 0x7a, B: 0xff, A: 0xff}
)

// SystemPlaceholderGray is the platform's text field placeholder gray
func SystemPlaceholderGray() Color { return systemPlaceholderGray }

// SystemTintBlue is the platform's default tint
func SystemTintBlue() Color { return systemTintBlue }
