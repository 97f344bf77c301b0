package renderer

// RecorderBuilderOption is a functional option applied to a Recorder during construction via NewRecorder.
type RecorderBuilderOption func(*Recorder)

// WithKeepLast makes the recorder keep only the n most recent frames.
//
// Parameters:
//   - n: the number of frames to keep, 0 for all
//
// Returns:
//   - RecorderBuilderOption: a function that applies the option to a recorder
func WithKeepLast(n int) RecorderBuilderOption {
	return func(r *Recorder) {
		if n >= 0 {
			r.keep = n
		}
	}
}

// WithMaxFrames makes Render fail with ErrFrameLimit after n frames.
//
// Parameters:
//   - n: the frame limit, 0 for none
//
// Returns:
//   - RecorderBuilderOption: a function that applies the option to a recorder
func WithMaxFrames(n int) RecorderBuilderOption {
	return func(r *Recorder) {
		if n >= 0 {
			r.max = n
		}
	}
}
