package assetexpl

import (
	"slices"
	"testing"
)

func TestOutline(t *testing.T) {
	src := `### S&P 500 Index

The **S&P 500** is the world's most followed index.

#### 🎯 Core **USA** Strategy
- **US Exposure**: Ideal for those bullish on American market
`
	got, err := Outline(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Heading{
		{Level: 3, Text: "S&P 500 Index"},
		{Level: 4, Text: "🎯 Core USA Strategy"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Outline() = %v, want %v", got, want)
	}
}

func TestOutlineErrors(t *testing.T) {
	for name, src := range map[string]string{
		"empty":      "",
		"blank":      "  \n\t\n",
		"no heading": "just a paragraph\n\n- and a list\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Outline(src); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
