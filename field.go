package formfield

// Field is a named form field bound to its compiled [Selector]. A Field is
// immutable and safe for concurrent use.
type Field struct {
	name     string
	selector Selector
}

// NewField compiles name into a [Field]. It returns an [InvalidNameError] if
// the name cannot address any submitted value.
func NewField(name string) (*Field, error) {
	s, err := Compile(name)
	if err != nil {
		return nil, err
	}
	return &Field{name: name, selector: s}, nil
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Selector returns the compiled selector.
func (f *Field) Selector() Selector {
	return f.selector
}

// Values returns the values submitted for the field. See [Extract].
func (f *Field) Values(input Node) []string {
	return Extract(f.selector, input)
}

// Files returns the files uploaded for the field. See [ExtractFiles].
func (f *Field) Files(input Node) []FileRecord {
	return ExtractFiles(f.selector, input)
}
