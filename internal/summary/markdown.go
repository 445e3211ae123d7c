package summary

import "strings"

// Markdown renders a record with a deterministic layout: a title heading,
// then per section a second-level heading (underscores become spaces,
// title-cased) with one bullet per item; grouped sections get a third-level
// heading per group. Each section ends with a blank line, so the document
// ends with exactly one newline.
func Markdown(r Record) string {
	lines := []string{"# " + r.Title, ""}
	for _, s := range r.Sections {
		lines = append(lines, "## "+titleCase(strings.ReplaceAll(s.Key, "_", " ")))
		if len(s.Groups) > 0 {
			for _, g := range s.Groups {
				lines = append(lines, "### "+titleCase(g.Key))
				for _, it := range g.Items {
					lines = append(lines, "- "+it)
				}
			}
		} else {
			for _, it := range s.Items {
				lines = append(lines, "- "+it)
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// titleCase uppercases the first letter of every word and lowercases the
// rest. Keys are ASCII identifiers, so no locale handling is needed here.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(r &^0x20) // to upper
		case isLetter:
			b.WriteRune(r | 0x20) // to lower
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
