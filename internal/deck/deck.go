// Package deck loads and addresses the ordered question sequence the card
// browser navigates. The navigation core never loads data itself; it is
// handed a Deck and an initial index.
package deck

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	swipederrors "github.com/talvid/swipedeck/pkg/errors"
)

// Record is one question card. Records are immutable once loaded;
// deep-link matching identifies a record by its trimmed text.
type Record struct {
	Text        string `yaml:"text" validate:"required"`
	Translation string `yaml:"translation,omitempty"`
	Category    string `yaml:"category" validate:"required"`
}

// Deck is an ordered question sequence.
type Deck struct {
	Title   string   `yaml:"title"`
	Records []Record `yaml:"questions" validate:"required,min=1,dive"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a deck file from disk and validates it.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, swipederrors.NewParseError(path, 0, err)
	}

	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, swipederrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&d); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			first := errs[0]
			return nil, swipederrors.NewValidationError(first.Namespace(), fmt.Sprintf("failed %q rule", first.Tag()), err)
		}
		return nil, swipederrors.NewValidationError("", err.Error(), err)
	}

	return &d, nil
}

// Len returns the number of records.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// At returns the record at index i.
func (d *Deck) At(i int) Record {
	return d.Records[i]
}

// Category returns the category of the record at index i, or an empty
// string out of range.
func (d *Deck) Category(i int) string {
	if d == nil || i < 0 || i >= len(d.Records) {
		return ""
	}
	return d.Records[i].Category
}

// Categories returns the distinct categories in first-seen order.
func (d *Deck) Categories() []string {
	seen := make(map[string]struct{}, len(d.Records))
	var out []string
	for _, r := range d.Records {
		key := strings.ToLower(strings.TrimSpace(r.Category))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// Filter returns a new deck holding only records whose category is in
// keep, preserving order. An empty keep list returns the deck unchanged.
func (d *Deck) Filter(keep []string) *Deck {
	if len(keep) == 0 {
		return d
	}
	allowed := make(map[string]struct{}, len(keep))
	for _, c := range keep {
		allowed[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}

	out := &Deck{Title: d.Title}
	for _, r := range d.Records {
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(r.Category))]; ok {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// ResolveRef resolves a deep-link reference to an index. A numeric ref is
// used directly when in range; anything else matches the first record
// whose trimmed text equals the trimmed ref. The second return reports
// whether the ref resolved.
func (d *Deck) ResolveRef(ref string) (int, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || d.Len() == 0 {
		return 0, false
	}

	if idx, err := strconv.Atoi(ref); err == nil {
		if idx >= 0 && idx < d.Len() {
			return idx, true
		}
		return 0, false
	}

	for i, r := range d.Records {
		if strings.TrimSpace(r.Text) == ref {
			return i, true
		}
	}
	return 0, false
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, scanErr := strconv.Atoi(matches[1])
	if scanErr != nil {
		return 0
	}
	return line
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	v, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = v
	return true
}
