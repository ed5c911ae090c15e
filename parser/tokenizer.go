package parser

import "strings"

// Prefix marks the start of an argument in a command line, like "n/" for a name.
type Prefix string

// Prefixes recognized by the commands.
const (
	PrefixName        Prefix = "n/"
	PrefixPhone       Prefix = "p/"
	PrefixEmail       Prefix = "e/"
	PrefixAddress     Prefix = "a/"
	PrefixRemark      Prefix = "r/"
	PrefixMembership  Prefix = "m/"
	PrefixTag         Prefix = "t/"
	PrefixDescription Prefix = "d/"
	PrefixAmount      Prefix = "amt/"
	PrefixDate        Prefix = "dt/"
)

// arguments is the result of tokenizing the arguments of a command.
type arguments struct {
	preamble string              // text before the first prefix
	values   map[Prefix][]string // values in order of appearance
}

// tokenize splits args on the given prefixes. A prefix is only recognized at
// the start of args or right after a whitespace; everything else is value text.
func tokenize(args string, prefixes ...Prefix) arguments {
	type marker struct {
		pos    int
		prefix Prefix
	}
	var markers []marker
	for i := 0; i < len(args); i++ {
		if i > 0 && args[i-1] != ' ' && args[i-1] != '\t' {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(args[i:], string(p)) {
				markers = append(markers, marker{i, p})
				i += len(p) - 1
				break
			}
		}
	}

	a := arguments{values: make(map[Prefix][]string)}
	end := len(args)
	if len(markers) > 0 {
		end = markers[0].pos
	}
	a.preamble = strings.TrimSpace(args[:end])
	for k, m := range markers {
		end := len(args)
		if k+1 < len(markers) {
			end = markers[k+1].pos
		}
		v := strings.TrimSpace(args[m.pos+len(m.prefix) : end])
		a.values[m.prefix] = append(a.values[m.prefix], v)
	}
	return a
}

// value returns the last value given for p. When a single-valued prefix is
// repeated, the last occurrence wins.
func (a arguments) value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// all returns every value given for p, in order.
func (a arguments) all(p Prefix) []string { return a.values[p] }

// has reports whether p was given at least once.
func (a arguments) has(p Prefix) bool { return len(a.values[p]) > 0 }

// any reports whether any prefix was given.
func (a arguments) any() bool { return len(a.values) > 0 }
