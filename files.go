package formfield

// FileRecord groups the attributes of one uploaded file.
type FileRecord struct {
	Name    string `form:"name" yaml:"name"`
	Type    string `form:"type" yaml:"type"`
	TmpName string `form:"tmp_name" yaml:"tmp_name"`
	Error   string `form:"error" yaml:"error"`
	Size    string `form:"size" yaml:"size"`
}

var fileAttributes = [...]string{"name", "type", "tmp_name", "error", "size"}

// ExtractFiles returns the uploaded files the selector addresses in input.
//
// Upload data keeps each attribute in a parallel tree directly below the
// top-level key, so the file named "doc[pages][]" has its names at
// doc[name][pages][0], doc[name][pages][1] and so on. Records are matched by
// enumeration index: an index where any attribute is missing or not a scalar
// yields no record, and enumeration ends at the shortest attribute list.
func ExtractFiles(s Selector, input Node) []FileRecord {
	if s.IsZero() {
		return nil
	}

	var columns [len(fileAttributes)]map[int]string
	count := -1
	for i, attr := range fileAttributes {
		column := make(map[int]string)
		n := collect(s.withAttribute(attr), input, func(j int, v string) {
			column[j] = v
		})
		columns[i] = column
		if count == -1 || n < count {
			count = n
		}
	}

	var records []FileRecord
	for j := 0; j < count; j++ {
		var attrs [len(fileAttributes)]string
		complete := true
		for i := range columns {
			v, ok := columns[i][j]
			if !ok {
				complete = false
				break
			}
			attrs[i] = v
		}
		if !complete {
			continue
		}
		records = append(records, FileRecord{
			Name:    attrs[0],
			Type:    attrs[1],
			TmpName: attrs[2],
			Error:   attrs[3],
			Size:    attrs[4],
		})
	}
	return records
}

// withAttribute returns a copy of s with attr inserted after the top-level
// key, shifting the repeat position one level deeper.
func (s Selector) withAttribute(attr string) Selector {
	segments := make([]string, 0, len(s.segments)+1)
	segments = append(segments, s.segments[0], attr)
	segments = append(segments, s.segments[1:]...)

	shifted := Selector{segments: segments}
	if s.repeat != 0 {
		shifted.repeat = s.repeat + 1
	}
	return shifted
}
