package format

import (
	"regexp"
	"strconv"
)

// sectionMarker is one prefix+digits+prefix token located in a text.
// Offsets are byte positions of the whole marker.
type sectionMarker struct {
	number int
	start  int
	end    int
}

// markerPattern compiles the marker regexp for a prefix. The prefix is
// matched literally, never as a regular expression.
func markerPattern(prefix string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(prefix)
	return regexp.MustCompile(quoted + `(\d+)` + quoted)
}

// scanMarkers tokenizes text into its ordered section markers. Matches are
// non-overlapping, left to right. A digit run too large for int is skipped.
func scanMarkers(text, prefix string) []sectionMarker {
	matches := markerPattern(prefix).FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	markers := make([]sectionMarker, 0, len(matches))
	for _, m := range matches {
		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		markers = append(markers, sectionMarker{number: number, start: m[0], end: m[1]})
	}
	return markers
}
