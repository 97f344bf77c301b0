package loader

// LoaderBuilderOption is a functional option for configuring a loader.
type LoaderBuilderOption func(*loader)

// WithAssetDir sets the directory relative mesh paths are resolved against.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithAssetDir(dir string) LoaderBuilderOption {
	return func(l *loader) {
		l.dir = dir
	}
}
