package training_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/yalign/training"
)

// ExampleStream streams a tiny tab-separated corpus.
func ExampleStream() {
	corpus := strings.Join([]string{
		"The cat sleeps.\tLe chat dort.",
		"It is raining.\tIl pleut.",
		"We are late.\tNous sommes en retard.",
	}, "\n")

	st := training.NewStream(strings.NewReader(corpus), training.WithSeed(7))
	for s := range st.Samples() {
		if s.Label {
			fmt.Printf("+ %s | %s\n", s.TextA, s.TextB)
		}
	}
	if err := st.Err(); err != nil {
		fmt.Println("error:", err)
		return
	}
	stats := st.Stats()
	fmt.Println(stats.Documents, stats.Positive, stats.Negative)
	// Output:
	// + The cat sleeps. | Le chat dort.
	// + It is raining. | Il pleut.
	// + We are late. | Nous sommes en retard.
	// 1 3 3
}
