package cssprune

// TransformFunc converts non-HTML-like source content into scannable
// content before extraction, e.g. rendering a markup dialect to HTML.
type TransformFunc func(content string) (string, error)

// Transformers maps a file extension (without dot) to the transform
// applied to files of that type before extraction. Extensions with no
// registered transform pass through unchanged.
type Transformers map[string]TransformFunc

// Apply runs the transform registered for the handle's extension, if
// any. A transform failure is fatal for the pass and surfaces as a
// *TransformError carrying the file identity.
func (t Transformers) Apply(h FileHandle, content string) (string, error) {
	fn, ok := t[h.Extension]
	if !ok {
		return content, nil
	}
	out, err := fn(content)
	if err != nil {
		return "", &TransformError{File: h.Path, Err: err}
	}
	return out, nil
}
