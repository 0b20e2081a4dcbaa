package formfield

import (
	"reflect"
	"strings"
	"sync"
)

// fieldTagCache maps a struct [reflect.Type] to the parsed "form" tags of its
// fields, in field order. It is safe for concurrent use.
var fieldTagCache sync.Map

type tag struct {
	Name   string
	Omit   bool
	Ignore bool
}

// tags returns the tags of the struct fields of fv. Untagged fields are named
// after the Go field.
func tags(fv reflect.Value) []*tag {
	tt := reflect.Indirect(fv).Type()
	if tt.Kind() != reflect.Struct {
		return []*tag{}
	}

	if cached, ok := fieldTagCache.Load(tt); ok {
		return cached.([]*tag)
	}

	parsed := make([]*tag, tt.NumField())
	for i := 0; i < tt.NumField(); i++ {
		f := tt.Field(i)
		t := parseTag(f.Tag.Get("form"))
		if !t.Ignore && t.Name == "" {
			t.Name = f.Name
		}
		parsed[i] = t
	}

	cached, _ := fieldTagCache.LoadOrStore(tt, parsed)
	return cached.([]*tag)
}

// parseTag reads a tag of the form "name,omitempty". A name of "-" or the
// "ignore" option skips the field.
func parseTag(str string) *tag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return &tag{Ignore: true}
	}

	name, opts, _ := strings.Cut(str, ",")

	t := &tag{}
	switch name = strings.TrimSpace(name); name {
	case "-":
		t.Ignore = true
	default:
		t.Name = name
	}

	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		switch strings.TrimSpace(opt) {
		case "omitempty":
			t.Omit = true
		case "ignore":
			t.Ignore = true
		}
	}
	return t
}
