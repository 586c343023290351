// Package desktop applies wallpapers and measures the display.
//
// Both concerns shell out to platform tools through a Runner, so they can
// be exercised without a desktop session. Only macOS is supported:
//
//	setter, err := desktop.NewSetter(runtime.GOOS, desktop.ExecRunner{}, home)
//	if errors.Is(err, apperrors.ErrUnsupportedPlatform) {
//	    // save the image only
//	}
//
//	display, err := desktop.NewDisplay(runtime.GOOS, desktop.ExecRunner{}, 0)
//	height, err := display.Height(ctx)
package desktop
