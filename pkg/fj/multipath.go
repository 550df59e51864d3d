package fj

// resolveMultipath evaluates a "[p1,p2,...]" or "{k1:p1,...}" component
// against json, producing a synthesized Context whose raw is a fresh JSON
// array or object built from each selector's result. comp is the bracketed
// text as isolated by splitPath; a comp that isn't exactly one balanced
// group resolves to not-found.
//
// Selectors are split on top-level commas only — scanSquash skips over any
// nested "(...)"/"[...]"/"{...}" group so a comma inside a query or a
// nested multipath doesn't end a selector early.
func resolveMultipath(json string, base int, comp string) Context {
	if end, ok := scanSquash(comp, 0); !ok || end != len(comp) {
		return Context{}
	}
	kind := comp[0]
	inner := comp[1 : len(comp)-1]
	selectors := splitSelectors(inner)

	buf := []byte{kind}
	written := 0
	for _, sel := range selectors {
		res := resolvePath(json, base, sel.path)
		if !res.Exists() {
			continue
		}
		if written > 0 {
			buf = append(buf, ',')
		}
		written++
		if kind == '{' {
			name := sel.name
			if name == "" {
				last := lastSegment(sel.path)
				if isPlainName(last) {
					name = last
				} else {
					name = "_"
				}
			}
			buf = appendJSONString(buf, name)
			buf = append(buf, ':')
		}
		raw := res.raw
		if raw == "" {
			raw = "null"
		}
		buf = append(buf, raw...)
	}
	closing := byte(']')
	if kind == '{' {
		closing = '}'
	}
	buf = append(buf, closing)
	var resKind Type
	if kind == '{' {
		resKind = Object
	} else {
		resKind = Array
	}
	return Context{kind: resKind, raw: string(buf)}
}

// splitSelectors splits inner on commas not nested inside a group, parsing
// each piece into a selector. The object form allows an explicit "name:path"
// prefix; a selector with a bare path and no colon leaves name empty, to be
// defaulted later from its path's last segment.
func splitSelectors(inner string) []selector {
	if len(inner) == 0 {
		return nil
	}
	var out []selector
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '"':
			if end, _, ok := scanString(inner, i); ok {
				i = end - 1
			}
		case '(', '[', '{':
			if end, ok := scanSquash(inner, i); ok {
				i = end - 1
			}
		case ',':
			out = append(out, parseSelector(inner[start:i]))
			start = i + 1
		}
	}
	out = append(out, parseSelector(inner[start:]))
	return out
}

// parseSelector splits a single selector on its first unescaped, un-nested
// ':' to separate an explicit object key from the path.
func parseSelector(raw string) selector {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			if end, _, ok := scanString(raw, i); ok {
				i = end - 1
			}
		case '(', '[', '{':
			if end, ok := scanSquash(raw, i); ok {
				i = end - 1
			}
		case ':':
			return selector{name: unescapeComponent(raw[:i]), path: raw[i+1:]}
		}
	}
	return selector{path: raw}
}
