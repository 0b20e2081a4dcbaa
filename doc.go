// Package formfield addresses values in decoded form data by HTML field name.
//
// A field name such as "user[emails][]" is compiled into a [Selector], the
// path a bracket-nesting query parser would produce for it. A selector is
// then applied to a nested [Node] tree to collect the values submitted under
// that name, or the file-upload records grouped under it. Compilation is
// strict: a name that a conforming parser would not derive back byte for byte
// is rejected with an [InvalidNameError]. Extraction never fails; a missing
// or differently shaped path simply yields no values.
//
// The package also ships a conforming query parser ([ParseQuery]) and encoder
// ([Encode]) so that node trees can be built from, and written back to,
// application/x-www-form-urlencoded data.
package formfield
