package bytcase_test

import (
	"fmt"

	"github.com/charlievieth/wordcase"
	"github.com/charlievieth/wordcase/bytcase"
)

func ExampleToTitle() {
	fmt.Printf("%s\n", bytcase.ToTitle([]byte("mixed_up snake_case, with some _spaces")))
	// Output:
	// Mixed Up Snake Case With Some Spaces
}

func ExampleToSnake() {
	fmt.Printf("%s\n", bytcase.ToSnake([]byte("XMLHttpRequest")))
	// Output:
	// xml_http_request
}

func ExampleAppend() {
	b := []byte("const ")
	b = bytcase.Append(b, []byte("max-retry count"), wordcase.ShoutySnake)
	b = append(b, " = 3"...)
	fmt.Printf("%s\n", b)
	// Output:
	// const MAX_RETRY_COUNT = 3
}

func ExampleWords() {
	fmt.Printf("%q\n", bytcase.Words([]byte("Word2Vec")))
	// Output:
	// ["Word" "2" "Vec"]
}
