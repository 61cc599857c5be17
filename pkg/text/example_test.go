// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text_test

import (
	"context"
	"fmt"

	"github.com/walteh/scaffoldrc/pkg/text"
)

func ExampleLiteral_Apply() {
	res, err := text.NewLiteral().Apply(context.Background(), "Welcome to MyTemplate!",
		text.Rule{Find: "MyTemplate", With: "Contoso"},
		text.Rule{Find: "Welcome", With: "Hello"},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(res.Text)
	fmt.Println(res.Count, res.Changed)

	// Output:
	// Hello to Contoso!
	// 2 true
}

func ExampleRegex_Apply() {
	res, err := text.NewRegex().Apply(context.Background(), `{"version": "0.0.1-alpha"}`,
		text.Rule{Find: `"version": "[^"]*"`, With: `"version": "1.0.0"`},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(res.Text)

	// Output:
	// {"version": "1.0.0"}
}
