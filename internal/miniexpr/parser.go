package miniexpr

import (
	"fmt"

	"github.com/dekarrin/fstrel/eval"
	"github.com/dekarrin/fstrel/symbol"
)

// Parse lexes and parses src into an eval.Node tree ready for
// eval.Evaluate, per the grammar:
//
//	topExpr   := orTerm (('|' | '&' | '-') orTerm)*
//	orTerm    := starTerm+
//	starTerm  := atom '*'*
//	atom      := mapping | '(' topExpr ')'
//	mapping   := symbolLit (':' symbolLit)?
//	symbolLit := 'ε' | '?' | '@' | any other single rune
//
// A bare symbolLit with no ':' denotes the identity mapping sym:sym.
// Concatenation has no operator of its own: a run of adjacent
// starTerms concatenates left to right, the way juxtaposed atoms do in
// the regexp/token lineage this reader is grounded on.
func Parse(src string) (eval.Node, error) {
	p := &parser{toks: Lex(src)}
	n, err := p.parseTop()
	if err != nil {
		return eval.Node{}, err
	}
	if p.peek().Kind != TokEOF {
		return eval.Node{}, fmt.Errorf("miniexpr: unexpected trailing input at token %d", p.pos)
	}
	return n, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseTop() (eval.Node, error) {
	left, err := p.parseOrTerm()
	if err != nil {
		return eval.Node{}, err
	}

	for {
		switch p.peek().Kind {
		case TokPipe:
			p.next()
			right, err := p.parseOrTerm()
			if err != nil {
				return eval.Node{}, err
			}
			left = eval.Union(left, right)
		case TokAmp:
			p.next()
			right, err := p.parseOrTerm()
			if err != nil {
				return eval.Node{}, err
			}
			left = eval.Intersect(left, right)
		case TokMinus:
			p.next()
			right, err := p.parseOrTerm()
			if err != nil {
				return eval.Node{}, err
			}
			left = eval.Subtract(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseOrTerm() (eval.Node, error) {
	left, err := p.parseStarTerm()
	if err != nil {
		return eval.Node{}, err
	}

	for p.startsAtom(p.peek().Kind) {
		right, err := p.parseStarTerm()
		if err != nil {
			return eval.Node{}, err
		}
		left = eval.Concat(left, right)
	}

	return left, nil
}

func (p *parser) startsAtom(k TokenKind) bool {
	return k == TokSymbol || k == TokLParen
}

func (p *parser) parseStarTerm() (eval.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return eval.Node{}, err
	}
	for p.peek().Kind == TokStar {
		p.next()
		atom = eval.Star(atom)
	}
	return atom, nil
}

func (p *parser) parseAtom() (eval.Node, error) {
	tok := p.peek()

	switch tok.Kind {
	case TokLParen:
		p.next()
		n, err := p.parseTop()
		if err != nil {
			return eval.Node{}, err
		}
		if p.peek().Kind != TokRParen {
			return eval.Node{}, fmt.Errorf("miniexpr: expected ')' at token %d", p.pos)
		}
		p.next()
		return n, nil

	case TokSymbol:
		return p.parseMapping()

	default:
		return eval.Node{}, fmt.Errorf("miniexpr: unexpected token at position %d", p.pos)
	}
}

func (p *parser) parseMapping() (eval.Node, error) {
	in, err := p.parseSymbolLit()
	if err != nil {
		return eval.Node{}, err
	}

	if p.peek().Kind == TokColon {
		p.next()
		out, err := p.parseSymbolLit()
		if err != nil {
			return eval.Node{}, err
		}
		return eval.Symbol(in, out), nil
	}

	return eval.Symbol(in, in), nil
}

func (p *parser) parseSymbolLit() (symbol.Symbol, error) {
	tok := p.next()
	if tok.Kind != TokSymbol {
		return symbol.Symbol{}, fmt.Errorf("miniexpr: expected a symbol at token %d", p.pos)
	}
	switch tok.Value {
	case "ε":
		return symbol.Epsilon, nil
	case "?":
		return symbol.Unknown, nil
	case "@":
		return symbol.Identity, nil
	default:
		return symbol.Of(tok.Value), nil
	}
}
