package contract

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseSignature parses a human-readable function signature into an ABIEntry.
// Parameter names and nested tuples are accepted:
//
//	transfer(address to, uint256 amount)
//	input_struct((uint256 a, uint256 b) s)
//	input_struct2_tuple(tuple(uint256,(uint256,uint256))[3])
func ParseSignature(sig string) (ABIEntry, error) {
	sig = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(sig), "function "))
	open := strings.Index(sig, "(")
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return ABIEntry{}, fmt.Errorf("invalid signature %q: expected format name(type1,type2)", sig)
	}

	p := &sigParser{src: sig, pos: open}
	inputs, err := p.paramList()
	if err != nil {
		return ABIEntry{}, fmt.Errorf("invalid signature %q: %w", sig, err)
	}
	if p.pos != len(p.src) {
		return ABIEntry{}, fmt.Errorf("invalid signature %q: unexpected %q at offset %d", sig, p.src[p.pos:], p.pos)
	}
	return ABIEntry{
		Name:            strings.TrimSpace(sig[:open]),
		Type:            "function",
		Inputs:          inputs,
		StateMutability: "nonpayable",
	}, nil
}

// NormalizeSignature removes parameter names, keeping only canonical types.
// "transfer(address to, uint256 amount)" → "transfer(address,uint256)"
func NormalizeSignature(sig string) (string, error) {
	e, err := ParseSignature(sig)
	if err != nil {
		return "", err
	}
	return e.Signature(), nil
}

type sigParser struct {
	src string
	pos int
}

func (p *sigParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *sigParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *sigParser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return fmt.Errorf("expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

// paramList parses "(" [param {"," param}] ")".
func (p *sigParser) paramList() ([]ABIParam, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	params := []ABIParam{}
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return params, nil
	}
	for {
		param, err := p.param()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return params, nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' at offset %d", p.pos)
		}
	}
}

func (p *sigParser) param() (ABIParam, error) {
	p.skipSpace()
	var param ABIParam
	if strings.HasPrefix(p.src[p.pos:], "tuple(") {
		p.pos += len("tuple")
	}
	if p.peek() == '(' {
		comps, err := p.paramList()
		if err != nil {
			return ABIParam{}, err
		}
		param.Type = "tuple"
		param.Components = comps
	} else {
		param.Type = p.ident()
		if param.Type == "" {
			return ABIParam{}, fmt.Errorf("expected type at offset %d", p.pos)
		}
		param.Type = canonicalAlias(param.Type)
	}
	for p.peek() == '[' {
		end := strings.IndexByte(p.src[p.pos:], ']')
		if end < 0 {
			return ABIParam{}, fmt.Errorf("unterminated array suffix at offset %d", p.pos)
		}
		param.Type += p.src[p.pos : p.pos+end+1]
		p.pos += end + 1
	}

	p.skipSpace()
	name := p.ident()
	if name == "indexed" {
		param.Indexed = true
		p.skipSpace()
		name = p.ident()
	}
	if name == "memory" || name == "calldata" || name == "storage" {
		p.skipSpace()
		name = p.ident()
	}
	param.Name = name
	return param, nil
}

func (p *sigParser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

// canonicalAlias expands the Solidity shorthands uint and int.
func canonicalAlias(typ string) string {
	switch typ {
	case "uint":
		return "uint256"
	case "int":
		return "int256"
	case "byte":
		return "bytes1"
	}
	return typ
}
