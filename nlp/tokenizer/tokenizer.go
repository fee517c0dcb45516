package tokenizer

import "regexp"

// reWord matches numbers and words, where a word may carry inner apostrophes
// so that contractions and possessives stay whole.
var reWord = regexp.MustCompile(`\pL+(?:['’]\pL+)*|\pN+`)

// Words splits a sentence into its word and number tokens, left to right.
func Words(sentence string) []string {
	return reWord.FindAllString(sentence, -1)
}
