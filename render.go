package orbrowser

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// TableHeaders lists the comparison table columns in order.
var TableHeaders = []string{
	"ID",
	"NAME",
	"CREATED",
	"CONTEXT_LENGTH",
	"MODALITY",
	"TOKENIZER",
	"PROMPT",
	"COMPLETION",
	"MAX_COMPL_TOKENS",
}

// prominentFields are pulled to the top of the detailed view, in this
// order, before the rest of the record is dumped.
var prominentFields = []string{
	"name",
	"id",
	"canonical_slug",
	"hugging_face_id",
	"created",
	"context_length",
}

// RenderOptions selects between the historical output variants.
type RenderOptions struct {
	// Prices is the display unit for the PROMPT and COMPLETION columns.
	Prices PriceUnit
	// TokenSplit doubles token counts up with their thousands value.
	TokenSplit bool
	// Raw dumps the entire record in the detailed view instead of the
	// description-first layout.
	Raw bool
}

var sentenceEnd = regexp.MustCompile(`\.\s+`)

// FormatDescription reflows a description to one sentence per line with
// a two-space indent. Sentences that lost their period to the split get
// it back; an empty description becomes a placeholder line.
func FormatDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "  (no description)"
	}
	var lines []string
	for _, s := range sentenceEnd.Split(desc, -1) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			s += "."
		}
		lines = append(lines, "  "+s)
	}
	return strings.Join(lines, "\n")
}

// WriteDetail renders one record in full. The default layout leads with
// the reflowed description, then the prominent fields with aligned
// keys, then every remaining field as YAML in original order. With
// opts.Raw the whole record is dumped as YAML instead.
func WriteDetail(w io.Writer, rec Record, opts RenderOptions) error {
	if opts.Raw {
		return writeYAML(w, rec)
	}

	fmt.Fprintf(w, "\ndescription:\n%s\n\n", FormatDescription(rec.Str("description")))

	maxLen := 0
	for _, key := range prominentFields {
		if len(key) > maxLen {
			maxLen = len(key)
		}
	}
	for _, key := range prominentFields {
		value, ok := rec.Get(key)
		display := ""
		switch {
		case !ok || value == nil:
			display = "null"
		case value == "":
			display = `""`
		default:
			display = fmt.Sprintf("%v", value)
		}
		fmt.Fprintf(w, "%s:%s  %s\n", key, strings.Repeat(" ", maxLen-len(key)), display)
	}
	fmt.Fprintln(w)

	rest := rec.Without(append([]string{"description"}, prominentFields...)...)
	if err := writeYAML(w, rest); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeYAML(w io.Writer, rec Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTable renders the records as an aligned nine-column comparison
// table with a header row and a dashed separator.
func WriteTable(w io.Writer, records []Record, opts RenderOptions) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, tableRow(rec, opts))
	}

	// Rune counts, not byte lengths: the cent symbol is multibyte.
	widths := make([]int, len(TableHeaders))
	for i, h := range TableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := writeRow(w, TableHeaders, widths); err != nil {
		return err
	}
	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	if err := writeRow(w, dashes, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
	return err
}

func tableRow(rec Record, opts RenderOptions) []string {
	arch := rec.Sub("architecture")
	pricing := rec.Sub("pricing")
	top := rec.Sub("top_provider")
	created, _ := rec.Int("created")
	contextLen, _ := rec.Int("context_length")
	maxCompletion, _ := top.Int("max_completion_tokens")

	return []string{
		orNA(rec.Str("id")),
		orNA(rec.Str("name")),
		FormatTimestamp(created),
		FormatTokens(contextLen, opts.TokenSplit),
		orNA(arch.Str("modality")),
		orNA(arch.Str("tokenizer")),
		FormatPrice(pricing.Str("prompt"), opts.Prices),
		FormatPrice(pricing.Str("completion"), opts.Prices),
		FormatTokens(maxCompletion, opts.TokenSplit),
	}
}

func orNA(s string) string {
	if s == "" {
		return NA
	}
	return s
}
