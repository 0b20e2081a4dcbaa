package formfield_test

import (
	"fmt"
	"os"

	"github.com/tomasbasham/formfield"
)

func ExampleCompile() {
	for _, name := range []string{"email", "user[name]", "user[emails][]", "user[name"} {
		s, err := formfield.Compile(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		at, repeated := s.RepeatAt()
		fmt.Println(s.Segments(), at, repeated)
	}
	// Output:
	// [email] 0 false
	// [user name] 0 false
	// [user emails] 2 true
	// form: invalid field name "user[name"
}

func ExampleExtract() {
	input := formfield.ParseQuery("tags[]=go&tags[]=forms&user[name]=Jane+Doe")

	fmt.Println(formfield.Extract(formfield.MustCompile("tags[]"), input))
	fmt.Println(formfield.Extract(formfield.MustCompile("user[name]"), input))
	fmt.Println(formfield.Extract(formfield.MustCompile("user[email]"), input))
	// Output:
	// [go forms]
	// [Jane Doe]
	// []
}

func ExampleField_Files() {
	input := mapOf("photos", uploads(
		listOf("cat.jpg", "dog.jpg"),
		listOf("image/jpeg", "image/jpeg"),
		listOf("/tmp/php1", "/tmp/php2"),
		listOf("0", "0"),
		listOf("2048", "4096"),
	))

	field, err := formfield.NewField("photos[]")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	for _, f := range field.Files(input) {
		fmt.Printf("%s %s %s\n", f.Name, f.Type, f.Size)
	}
	// Output:
	// cat.jpg image/jpeg 2048
	// dog.jpg image/jpeg 4096
}

func ExampleEncode() {
	m := formfield.NewMap()
	m.Set("name", formfield.Scalar("Jane Doe"))
	m.Set("tags", formfield.List{formfield.Scalar("a"), formfield.Scalar("b")})

	fmt.Println(formfield.Encode(m))
	// Output:
	// name=Jane+Doe&tags%5B%5D=a&tags%5B%5D=b
}

func ExampleFromValue() {
	type Signup struct {
		Email  string   `form:"email"`
		Topics []string `form:"topics"`
		Note   string   `form:"note,omitempty"`
	}

	input, err := formfield.FromValue(Signup{
		Email:  "jane@example.com",
		Topics: []string{"go", "forms"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	for _, name := range []string{"email", "topics[]", "note"} {
		field, err := formfield.NewField(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println(name, field.Values(input))
	}
	fmt.Println(formfield.Encode(input.(*formfield.Map)))
	// Output:
	// email [jane@example.com]
	// topics[] [go forms]
	// note []
	// email=jane%40example.com&topics%5B%5D=go&topics%5B%5D=forms
}
