package preprocess

// Stemmer maps a single token to its canonical stem.
type Stemmer interface {
	Stem(word string) string
}
