// Package words supplies answers for game rounds. Candidate lists come
// from line-per-entry text files or, when no files are configured, from
// small embedded defaults, so the binary plays out of the box.
package words

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"unicode"

	"github.com/mishankov/gallows/internal/engine"
)

// CategoryInfo describes one playable category for menus and listings.
type CategoryInfo struct {
	Category engine.Category
	Title    string
	Count    int
}

// Source holds the candidate lists for every category and the random
// source used to pick answers. The rng is injected so tests and the
// --seed flag get deterministic rounds.
type Source struct {
	lists map[engine.Category][]string
	rng   *rand.Rand
}

// Load builds a Source. An explicit path is read from disk and is an
// error if unreadable; an empty path falls back to the embedded default
// list for that category.
func Load(basicPath, phrasesPath string, rng *rand.Rand) (*Source, error) {
	basic, err := loadList(basicPath, defaultBasicList, engine.CategoryBasic)
	if err != nil {
		return nil, err
	}
	phrases, err := loadList(phrasesPath, defaultPhrasesList, engine.CategoryIntermediate)
	if err != nil {
		return nil, err
	}

	return &Source{
		lists: map[engine.Category][]string{
			engine.CategoryBasic:        basic,
			engine.CategoryIntermediate: phrases,
		},
		rng: rng,
	}, nil
}

// Pick returns a random candidate for the category.
func (s *Source) Pick(cat engine.Category) (string, error) {
	list := s.lists[cat]
	if len(list) == 0 {
		return "", fmt.Errorf("words: no entries for category %s", cat)
	}
	return list[s.rng.Intn(len(list))], nil
}

// Count returns how many candidates a category has.
func (s *Source) Count(cat engine.Category) int {
	return len(s.lists[cat])
}

// Categories lists the playable categories in menu order.
func (s *Source) Categories() []CategoryInfo {
	cats := []engine.Category{engine.CategoryBasic, engine.CategoryIntermediate}
	infos := make([]CategoryInfo, 0, len(cats))
	for _, c := range cats {
		infos = append(infos, CategoryInfo{
			Category: c,
			Title:    c.Title(),
			Count:    s.Count(c),
		})
	}
	return infos
}

func loadList(path string, embedded []byte, cat engine.Category) ([]string, error) {
	var lines []string
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("words: cannot open %s list %s: %w", cat, path, err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("words: cannot read %s list %s: %w", cat, path, err)
		}
	} else {
		lines = strings.Split(string(embedded), "\n")
	}

	list := filterLines(lines, cat)
	if len(list) == 0 {
		return nil, fmt.Errorf("words: %s list has no usable entries", cat)
	}
	return list, nil
}

// filterLines normalizes and validates candidates. Basic entries must be
// single all-letter words and are lowercased; phrase entries keep their
// spacing and punctuation but must contain at least one letter. Lines
// that don't qualify are skipped rather than fatal.
func filterLines(lines []string, cat engine.Category) []string {
	var out []string
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		switch cat {
		case engine.CategoryBasic:
			entry = strings.ToLower(entry)
			if isWord(entry) {
				out = append(out, entry)
			}
		default:
			if hasLetter(entry) {
				out = append(out, entry)
			}
		}
	}
	return out
}

func isWord(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
