package rgbproc

// StreamOption configures a WindowStream during creation.
//
// Example:
//
//	ws, err := rgbproc.NewWindowStream(res, src, rgbproc.WithProgress(func(row int) {
//	    fmt.Fprintf(os.Stderr, "\rline...%d", row)
//	}))
type StreamOption func(*streamOptions)

// streamOptions holds optional configuration for WindowStream creation.
type streamOptions struct {
	progress func(row int)
}

// defaultOptions returns the default stream options.
func defaultOptions() streamOptions {
	return streamOptions{}
}

// WithProgress registers fn to be called each time an output row has been
// fully produced. row is the 1-based count of completed rows.
func WithProgress(fn func(row int)) StreamOption {
	return func(o *streamOptions) {
		o.progress = fn
	}
}
