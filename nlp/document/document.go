package document

import "strings"

// Token is a surface word paired with its lemma. Lemma is what every
// comparison and count works on; Surface is kept for display.
type Token struct {
	Surface string `json:"surface"`
	Lemma   string `json:"lemma"`
}

// Sentence is an ordered, immutable run of tokens.
type Sentence struct {
	tokens []Token
}

// NewSentence copies tokens so later changes to the slice do not leak in.
func NewSentence(tokens []Token) Sentence {
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return Sentence{tokens: cp}
}

// Len returns the number of tokens.
func (s Sentence) Len() int { return len(s.tokens) }

// At returns the i-th token.
func (s Sentence) At(i int) Token { return s.tokens[i] }

// Tokens returns a copy of the tokens.
func (s Sentence) Tokens() []Token {
	cp := make([]Token, len(s.tokens))
	copy(cp, s.tokens)
	return cp
}

// Lemmas returns the lemma of every token, in order.
func (s Sentence) Lemmas() []string {
	out := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		out[i] = t.Lemma
	}
	return out
}

// Text joins the surface forms with single spaces.
func (s Sentence) Text() string {
	parts := make([]string, len(s.tokens))
	for i, t := range s.tokens {
		parts[i] = t.Surface
	}
	return strings.Join(parts, " ")
}

// Flatten concatenates the tokens of every sentence in order.
func Flatten(sentences []Sentence) []Token {
	n := 0
	for _, s := range sentences {
		n += s.Len()
	}
	out := make([]Token, 0, n)
	for _, s := range sentences {
		out = append(out, s.tokens...)
	}
	return out
}
