// SPDX-License-Identifier: MIT

package request_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/affinetree/request"
)

// ExampleRunner_Run drives a tree from a request stream.
func ExampleRunner_Run() {
	input := `3 2
Translate 5 0
Rotate 90
Scale 2 2
Q 1 0 0 2
Q 1 0 0 0
`
	r, err := request.NewRunner(request.DefaultConfig(), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if _, err = r.Run(context.Background(), strings.NewReader(input), os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// (1,0): 0.00000 12.00000
	// (1,0): 6.00000 0.00000
}
