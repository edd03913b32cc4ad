package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reoring/declschema/model"
)

// GetterExtractor collects the properties a type exposes either as declared
// properties or as JavaBean-style accessor functions:
//
//   - getX() T with T != unit becomes property "x" of type T
//   - isX() bool becomes property "x" of type bool
//   - a matching setX(T) makes the property read-write and is claimed
//
// Only members declared on the type itself are inspected; inherited members
// reach the schema through the supertypes. When two members produce the same
// name the first declaration wins.
type GetterExtractor struct {
	// Include restricts the candidate members; nil accepts every member.
	Include func(m model.Member) bool
}

func (g GetterExtractor) ExtractProperties(t *model.Type, accept NamePredicate) []Property {
	if t == nil {
		return nil
	}
	var (
		out  []Property
		seen = map[string]struct{}{}
	)
	add := func(p Property) {
		if _, dup := seen[p.Name]; dup || !accept.Accept(p.Name) {
			return
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
	}
	for _, m := range t.Members {
		if g.Include != nil && !g.Include(m) {
			continue
		}
		switch m.Kind {
		case model.MemberProperty:
			mode := ReadOnly
			if m.Mutable {
				mode = ReadWrite
			}
			add(Property{
				Name:             m.Name,
				Type:             m.Type,
				Mode:             mode,
				HasDefault:       mode == ReadOnly,
				Hidden:           m.Hidden,
				DirectAccessOnly: m.DirectAccessOnly,
			})
		case model.MemberFunction:
			name, ok := getterPropertyName(m)
			if !ok {
				continue
			}
			p := Property{
				Name:             name,
				Type:             m.Type,
				Mode:             ReadOnly,
				HasDefault:       true,
				Hidden:           m.Hidden,
				DirectAccessOnly: m.DirectAccessOnly,
				ClaimedFunctions: []string{m.Name},
			}
			if setter, ok := findSetter(t, name, m.Type); ok {
				p.Mode = ReadWrite
				p.HasDefault = false
				p.ClaimedFunctions = append(p.ClaimedFunctions, setter)
			}
			add(p)
		}
	}
	return out
}

// IsGetter reports whether m is an accessor function recognized by
// GetterExtractor.
func IsGetter(m model.Member) bool {
	_, ok := getterPropertyName(m)
	return ok
}

func getterPropertyName(m model.Member) (string, bool) {
	if m.Kind != model.MemberFunction || len(m.Params) != 0 || m.Type == nil || m.Type.Name == model.Unit {
		return "", false
	}
	if rest, ok := accessorSuffix(m.Name, "get"); ok {
		return decapitalize(rest), true
	}
	if rest, ok := accessorSuffix(m.Name, "is"); ok && m.Type.Name == model.Bool {
		return decapitalize(rest), true
	}
	return "", false
}

func findSetter(t *model.Type, prop string, typ *model.Type) (string, bool) {
	want := "set" + capitalize(prop)
	for _, m := range t.Members {
		if m.Kind == model.MemberFunction && m.Name == want && len(m.Params) == 1 && m.Params[0] == typ {
			return m.Name, true
		}
	}
	return "", false
}

func accessorSuffix(name, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return rest, true
}

// decapitalize follows the JavaBeans rule: the leading rune is lowered
// unless the first two runes are both upper case ("URL" stays "URL").
func decapitalize(s string) string {
	runes := []rune(s)
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
