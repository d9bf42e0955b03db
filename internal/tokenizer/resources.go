package tokenizer

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
)

// Word-set resources backing the repair rules. The lists are compiled into
// the binary and parsed once per NewEnglish call; the resulting maps are
// never mutated afterwards.

//go:embed resources
var resourceFS embed.FS

type resources struct {
	apostropheFront    map[string]bool  // contraction tails: cause, em, til, ...
	abbreviationPeriod map[string]bool  // abbreviations that keep their period
	hyphenPrefix       map[string]bool  // prefixes joined over a hyphen: e, co, ...
	hyphenSuffix       map[string]bool  // suffixes joined over a hyphen: free, ...
	concatWords        map[string][]int // fused word -> rune cut positions
}

func loadResources() *resources {
	return &resources{
		apostropheFront:    readWordSet("resources/apostrophe_front.txt"),
		abbreviationPeriod: readWordSet("resources/abbreviation_period.txt"),
		hyphenPrefix:       readWordSet("resources/hyphen_prefix.txt"),
		hyphenSuffix:       readWordSet("resources/hyphen_suffix.txt"),
		concatWords:        readConcatWords("resources/concat_words.txt"),
	}
}

func readWordSet(name string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range readLines(name) {
		set[line] = true
	}
	return set
}

// readConcatWords parses lines of space-separated word parts: "can not"
// yields key "cannot" with cut positions [3, 6]. Positions are rune
// indices into the fused word.
func readConcatWords(name string) map[string][]int {
	m := make(map[string][]int)
	for _, line := range readLines(name) {
		var cuts []int
		pos := 0
		for _, part := range strings.Fields(line) {
			pos += len([]rune(part))
			cuts = append(cuts, pos)
		}
		m[strings.Join(strings.Fields(line), "")] = cuts
	}
	return m
}

func readLines(name string) []string {
	data, err := resourceFS.ReadFile(name)
	if err != nil {
		// Embedded files are part of the build; a missing one is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("tokenizer: missing embedded resource %s: %v", name, err))
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
