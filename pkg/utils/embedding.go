package utils

import (
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// EmbeddingDimensions matches the vector(1536) column on destinations.
const EmbeddingDimensions = 1536

// LocalEmbedder produces deterministic hash-based text vectors for
// destination similarity search. No network calls, so search keeps working
// when no embedding provider is configured. For higher quality swap in a
// proper embedding model behind the same method.
type LocalEmbedder struct{}

func NewLocalEmbedder() *LocalEmbedder {
	return &LocalEmbedder{}
}

// TextToVector normalizes the text and distributes each word's hash influence
// across the vector, then L2-normalizes the result.
func (e *LocalEmbedder) TextToVector(text string) pgvector.Vector {
	text = strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(text)

	vector := make([]float32, EmbeddingDimensions)

	for _, word := range words {
		hash := hashWord(word)
		for i := 0; i < EmbeddingDimensions; i++ {
			influence := math.Sin(float64(hash+uint32(i))) * 0.1
			vector[i] += float32(influence)
		}
	}

	magnitude := float32(0)
	for _, val := range vector {
		magnitude += val * val
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))

	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}
