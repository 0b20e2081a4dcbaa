package formfield_test

import (
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/formfield"
)

// Compares nodes, including the key order of maps.
var NodeComparer = cmp.AllowUnexported(formfield.Map{})

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns"`
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
	Private string  `form:"-"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

// mapOf builds a map from alternating keys and values. String values become
// scalars.
func mapOf(kv ...interface{}) *formfield.Map {
	m := formfield.NewMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), nodeOf(kv[i+1]))
	}
	return m
}

func listOf(vs ...interface{}) formfield.List {
	l := formfield.List{}
	for _, v := range vs {
		l = append(l, nodeOf(v))
	}
	return l
}

func nodeOf(v interface{}) formfield.Node {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return formfield.Scalar(v)
	case formfield.Node:
		return v
	default:
		panic(fmt.Sprintf("unsupported fixture value %T", v))
	}
}

// uploads builds the parallel attribute trees of a file upload field.
func uploads(names, types, tmpNames, errs, sizes formfield.Node) *formfield.Map {
	return mapOf(
		"name", names,
		"type", types,
		"tmp_name", tmpNames,
		"error", errs,
		"size", sizes,
	)
}
