package render

// PixelsPerInch is the screen resolution assumed when a backend sizes in pixels.
// Excel and most image viewers use 96 DPI.
const PixelsPerInch = 96

// InchesToPixels converts a length in inches to whole pixels at 96 DPI.
func InchesToPixels(in float64) int {
	return int(in*PixelsPerInch + 0.5)
}

// DefaultSize returns the figure size in inches for a chart with n subplots.
// A single axes is 10x5; stacked layouts get 4 inches per subplot.
func DefaultSize(n int) (width, height float64) {
	if n <= 1 {
		return 10, 5
	}
	return 10, 4 * float64(n)
}
