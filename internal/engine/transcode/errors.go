package transcode

import "errors"

// Sentinel errors for transcode operations.
var (
	// ErrUnknownEncoding indicates an encoding name that ParseEncoding does not recognise.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrUnsupported indicates a wide width or encoding value outside the supported set.
	ErrUnsupported = errors.New("unsupported conversion")
)
