package tinyre_test

import (
	"fmt"

	"github.com/coregx/tinyre"
)

func Example() {
	re, err := tinyre.Compile(`\d+`)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(re.Find([]byte("order 42 shipped"))))
	// Output: 42
}

func ExampleMatches() {
	fmt.Printf("%q\n", tinyre.Matches([]byte("(bc)+"), []byte("abcbca")))
	fmt.Println(tinyre.Matches([]byte("(bc)+"), []byte("ccc")) == nil)
	// Output:
	// "bcbc"
	// true
}

func ExampleRegex_FindIndex() {
	re := tinyre.MustCompile("[a-z]+")
	fmt.Println(re.FindIndex([]byte("Hello")))
	// Output: [1 5]
}

func ExampleRegex_MatchString() {
	re := tinyre.MustCompile(`^v\d+`)
	fmt.Println(re.MatchString("v2 final"))
	fmt.Println(re.MatchString("final v2"))
	// Output:
	// true
	// false
}
