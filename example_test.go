package orbrowser_test

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	orbrowser "github.com/janwychowaniak/openrouter-models-browser"
)

const sampleCatalog = `{
  "data": [
    {
      "id": "anthropic/claude-3-haiku",
      "name": "Anthropic: Claude 3 Haiku",
      "created": 1710374400,
      "context_length": 200000,
      "architecture": {"modality": "text+image->text", "tokenizer": "Claude"},
      "pricing": {"prompt": "0.00000025", "completion": "0.00000125"}
    },
    {
      "id": "google/gemini-pro",
      "name": "Google: Gemini Pro",
      "created": 1702425600,
      "context_length": 131072,
      "architecture": {"modality": "text->text", "tokenizer": "Gemini"},
      "pricing": {"prompt": "0.000000125", "completion": "0.000000375"}
    }
  ]
}`

func sampleRecords() []orbrowser.Record {
	var resp struct {
		Data []orbrowser.Record `yaml:"data"`
	}
	if err := yaml.Unmarshal([]byte(sampleCatalog), &resp); err != nil {
		log.Fatal(err)
	}
	return resp.Data
}

func ExampleSearch() {
	for _, rec := range orbrowser.Search(sampleRecords(), "claude") {
		fmt.Println(rec.Str("id"))
	}
	// Output:
	// anthropic/claude-3-haiku
}

func ExampleSearchAll() {
	// Overlapping queries: each model appears once, in first-seen order.
	matches := orbrowser.SearchAll(sampleRecords(), []string{"gemini", "text"})
	for _, rec := range matches {
		fmt.Println(rec.Str("id"))
	}
	// Output:
	// google/gemini-pro
	// anthropic/claude-3-haiku
}

func ExampleFormatPrice() {
	fmt.Println(orbrowser.FormatPrice("0.00000025", orbrowser.Dollars))
	fmt.Println(orbrowser.FormatPrice("0.00000025", orbrowser.Cents))
	fmt.Println(orbrowser.FormatPrice("", orbrowser.Dollars))
	// Output:
	// $0.25
	// ¢25.00
	// N/A
}

func ExampleFormatTokens() {
	fmt.Println(orbrowser.FormatTokens(131072, true))
	fmt.Println(orbrowser.FormatTokens(500, true))
	fmt.Println(orbrowser.FormatTokens(131072, false))
	// Output:
	// 131072 | 131k
	// 500 | 0k
	// 131072
}

func ExampleFormatDescription() {
	fmt.Println(orbrowser.FormatDescription("First sentence. Second sentence without period"))
	// Output:
	//   First sentence.
	//   Second sentence without period.
}
