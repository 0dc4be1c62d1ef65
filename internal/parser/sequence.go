package parser

import (
	"slices"

	"quill/internal/ast"
	"quill/internal/token"
)

// parseSequence parses "item (separator item)*" until a terminator or a
// non-separator token. An empty sequence is valid when a terminator comes
// first. A separator always commits to another item; an item error aborts
// the whole sequence. The terminator itself is not consumed.
func parseSequence[T ast.Node](
	s *TokenStream,
	item func(*TokenStream) (T, error),
	separator token.Kind,
	terminators ...token.Kind,
) (ast.Sequence[T], error) {
	seq, _, err := sequence(s, item, separator, false, terminators)
	return seq, err
}

// parseSequenceTrailing is parseSequence for lists that accept a trailing
// separator before the terminator ("f($a, $b,)"). The trailing separator is
// returned separately and is not part of the sequence.
func parseSequenceTrailing[T ast.Node](
	s *TokenStream,
	item func(*TokenStream) (T, error),
	separator token.Kind,
	terminators ...token.Kind,
) (ast.Sequence[T], *token.Token, error) {
	return sequence(s, item, separator, true, terminators)
}

func sequence[T ast.Node](
	s *TokenStream,
	item func(*TokenStream) (T, error),
	separator token.Kind,
	allowTrailing bool,
	terminators []token.Kind,
) (ast.Sequence[T], *token.Token, error) {
	var (
		items      []T
		separators []token.Token
	)
	if slices.Contains(terminators, s.Peek().Kind) {
		return ast.NewSequence(items, separators), nil, nil
	}
	for {
		it, err := item(s)
		if err != nil {
			return ast.Sequence[T]{}, nil, err
		}
		items = append(items, it)
		if !s.At(separator) {
			return ast.NewSequence(items, separators), nil, nil
		}
		sep := s.AdvanceAny()
		if allowTrailing && slices.Contains(terminators, s.Peek().Kind) {
			return ast.NewSequence(items, separators), &sep, nil
		}
		// после разделителя элемент обязателен
		separators = append(separators, sep)
	}
}
