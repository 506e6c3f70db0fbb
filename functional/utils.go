package functional

import (
	"crypto/rand"
	"fmt"

	"github.com/go-faker/faker/v4"
)

func generateBytes(n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil
	}
	return b
}

// generatePayload mixes the two payload shapes an RPC layer produces: runs of
// generated text, which compress well, and raw binary, which does not.
func generatePayload(n int) []byte {
	if n%2 == 0 {
		return generateText(n)
	}
	return generateBytes(n)
}

func generateText(n int) []byte {
	text := make([]byte, 0, n)
	for len(text) < n {
		text = append(text, randomSentence()...)
	}
	return text[:n]
}

func randomSentence() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return " "
	}

	return quote.Sentence
}
