package cardschema

// Normalizer is implemented by schema values that complete themselves after
// every field has been deserialized, for example by inferring a missing
// mimeType or discarding unusable children.
type Normalizer interface {
	Normalize()
}

// ApplyNormalize calls Normalize on v if *T implements Normalizer.
func ApplyNormalize[T any](v *T) {
	if n, ok := any(v).(Normalizer); ok {
		n.Normalize()
	}
}
