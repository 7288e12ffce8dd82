package converters_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/epinet/converters"
)

// ExampleRead loads a star with one extra edge and writes it back.
func ExampleRead() {
	in := "4\n1 2 3\n0 2\n0 1\n0\n"
	g, err := converters.Read[struct{}](strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	_ = converters.Write(os.Stdout, g)
	// Output:
	// 4 4
	// 4
	// 1 2 3
	// 0 2
	// 0 1
	// 0
}

// ExampleParseError shows how malformed input is located.
func ExampleParseError() {
	_, err := converters.Read[struct{}](strings.NewReader("2\n1\n7\n"))
	var perr *converters.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Line, errors.Is(err, converters.ErrBadNeighbor))
	}
	// Output:
	// 3 true
}
