//go:build !unix

package terminal

// DetectColorMode assumes true color where no environment probing is available
func DetectColorMode() ColorMode {
	return ColorModeTrueColor
}
