// Package exposure runs the art-exposure pipeline end to end.
//
// # Manager
//
// The Manager performs one pass:
//
//  1. Create the output directory and find the target height
//  2. Search the collection for the configured query
//  3. Draw random objects until one has an image
//  4. Download and decode the image
//  5. Resize it, add the transparent frame and the optional caption
//  6. Save it as PNG and remove previous images
//  7. Set it as the desktop wallpaper (optional)
//
// # Basic Usage
//
//	manager := exposure.NewManager(settings, func(event exposure.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Path)
//
// # Failures
//
// Steps 2 to 6 stop the run on failure and return a typed error from
// package errors. Removing old images and setting the wallpaper only
// report problems: the saved image is the result either way.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Testing
//
// Options replace the platform pieces:
//
//	manager := exposure.NewManager(settings, nil,
//	    exposure.WithFs(afero.NewMemMapFs()),
//	    exposure.WithDisplay(desktop.StaticDisplay(1080)),
//	    exposure.WithSetter(fakeSetter),
//	)
package exposure
