package extract

import "strings"

const fenceMarker = "```"

// Sections is the three-way split of a model response around its first
// fenced code block. Preamble and Trailing are prose; Code is the verbatim
// text between the fences, untouched so that a downloaded artifact is
// byte-faithful to what the model produced.
type Sections struct {
	Preamble string
	Code     string
	HasCode  bool
	Trailing string
}

// Split cuts rawText around the first fence opened with ```<fenceTag>.
//
// Rules, in order:
//   - no opening marker: the whole input is Preamble, HasCode is false.
//   - opening marker but no closing ```: the rest of the input is Code
//     (truncated responses happen, they are not an error).
//   - otherwise Code is the text strictly between the fences and Trailing
//     is everything after the closing fence. Later fenced blocks stay
//     verbatim inside Trailing; only the first block is extracted.
//
// Split never fails and never trims: when the input held exactly one
// well-formed block, Preamble + "```" + fenceTag + Code + "```" + Trailing
// reproduces it exactly.
func Split(rawText, fenceTag string) Sections {
	opening := fenceMarker + fenceTag
	start := strings.Index(rawText, opening)
	if start < 0 {
		return Sections{Preamble: rawText}
	}
	rest := rawText[start+len(opening):]
	end := strings.Index(rest, fenceMarker)
	if end < 0 {
		return Sections{
			Preamble: rawText[:start],
			Code:     rest,
			HasCode:  true,
		}
	}
	return Sections{
		Preamble: rawText[:start],
		Code:     rest[:end],
		HasCode:  true,
		Trailing: rest[end+len(fenceMarker):],
	}
}
