package assetexpl

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"sync"

	"github.com/etnz/assetexpl/content"
	"gopkg.in/yaml.v3"
)

// Catalog is the read-only collection of all index profiles and labels for
// every supported language.
//
// A Catalog is built by LoadCatalog and never mutated afterwards, so it is safe
// for concurrent use without locking.
type Catalog struct {
	contents map[Language]*languageContent
}

type languageContent struct {
	labels   Labels
	keys     []string // menu order
	profiles map[string]Profile
}

// contentFile is the layout of a <language>.yaml file.
type contentFile struct {
	Language Language  `yaml:"language"`
	Labels   Labels    `yaml:"labels"`
	Indices  []Profile `yaml:"indices"`
}

// LoadCatalog decodes and validates the content of every supported language
// from fsys, one "<language>.yaml" file each.
//
// Validation runs once, here: unique non-empty keys, complete labels and
// profiles, markdown text blocks, valid compositions, and the same index keys
// across languages. Any failure is returned and no catalog is built.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{contents: make(map[Language]*languageContent, len(languages))}
	for _, lang := range languages {
		name := string(lang) + ".yaml"
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("could not open content file %q: %w", name, err)
		}
		lc, err := decodeContent(f, lang)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("content file %q: %w", name, err)
		}
		c.contents[lang] = lc
	}
	if err := c.checkParity(); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeContent reads and validates one language file.
func decodeContent(r io.Reader, lang Language) (*languageContent, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file contentFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("could not decode: %w", err)
	}
	if file.Language != lang {
		return nil, fmt.Errorf("declares language %q, want %q", file.Language, lang)
	}
	if err := file.Labels.validate(); err != nil {
		return nil, err
	}
	if len(file.Indices) == 0 {
		return nil, errors.New("no index defined")
	}

	lc := &languageContent{
		labels:   file.Labels,
		keys:     make([]string, 0, len(file.Indices)),
		profiles: make(map[string]Profile, len(file.Indices)),
	}
	for _, p := range file.Indices {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, exists := lc.profiles[p.Key]; exists {
			return nil, fmt.Errorf("duplicate index key %q", p.Key)
		}
		lc.keys = append(lc.keys, p.Key)
		lc.profiles[p.Key] = p
	}
	return lc, nil
}

// checkParity verifies that every language defines the same set of index keys.
// The order may differ.
func (c *Catalog) checkParity() error {
	ref := languages[0]
	want := slices.Sorted(slices.Values(c.contents[ref].keys))
	for _, lang := range languages[1:] {
		got := slices.Sorted(slices.Values(c.contents[lang].keys))
		if !slices.Equal(want, got) {
			return fmt.Errorf("index keys of %q %v differ from %q %v", lang, got, ref, want)
		}
	}
	return nil
}

func (c *Catalog) content(lang Language) (*languageContent, error) {
	lc, ok := c.contents[lang]
	if !ok {
		return nil, &NotFoundError{Kind: "language", Value: string(lang)}
	}
	return lc, nil
}

// Profile returns the profile of index key in lang.
// It fails with a *NotFoundError if either is unknown.
func (c *Catalog) Profile(lang Language, key string) (Profile, error) {
	lc, err := c.content(lang)
	if err != nil {
		return Profile{}, err
	}
	p, ok := lc.profiles[key]
	if !ok {
		return Profile{}, &NotFoundError{Kind: "index", Value: key}
	}
	return p.clone(), nil
}

// Labels returns the UI labels of lang.
func (c *Catalog) Labels(lang Language) (Labels, error) {
	lc, err := c.content(lang)
	if err != nil {
		return Labels{}, err
	}
	return lc.labels, nil
}

// IndexKeys returns the index keys of lang in selection menu order.
func (c *Catalog) IndexKeys(lang Language) ([]string, error) {
	lc, err := c.content(lang)
	if err != nil {
		return nil, err
	}
	return slices.Clone(lc.keys), nil
}

// Profiles returns all profiles of lang in selection menu order.
func (c *Catalog) Profiles(lang Language) ([]Profile, error) {
	lc, err := c.content(lang)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(lc.keys))
	for _, k := range lc.keys {
		profiles = append(profiles, lc.profiles[k].clone())
	}
	return profiles, nil
}

// MarshalJSON encodes the whole catalog, languages and indices in their
// declaration order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, lang := range languages {
		lc := c.contents[lang]
		var lw jsonObjectWriter
		lw.Append("labels", lc.labels.jsonObject())
		var iw jsonObjectWriter
		for _, k := range lc.keys {
			iw.Append(k, lc.profiles[k].jsonObject())
		}
		lw.Append("indices", &iw)
		w.Append(string(lang), &lw)
	}
	return w.MarshalJSON()
}

func (l Labels) jsonObject() *jsonObjectWriter {
	var w jsonObjectWriter
	for _, e := range l.entries() {
		w.Append(e.key, e.value)
	}
	return &w
}

func (p Profile) jsonObject() *jsonObjectWriter {
	var risk jsonObjectWriter
	risk.Append("risk_level", p.Risk.Level)
	risk.Append("volatility", p.Risk.Volatility)
	risk.Append("time_horizon", p.Risk.Horizon)
	risk.Append("return_potential", p.Risk.Returns)

	var comp jsonObjectWriter
	comp.Append("geographic", p.Composition.Geographic)
	comp.Append("sectors", p.Composition.Sectors)

	var w jsonObjectWriter
	w.Append("key", p.Key)
	w.Append("name", p.Name)
	w.Append("description", p.Description)
	w.Append("risk_profile", &risk)
	w.Append("composition", &comp)
	w.Append("strategy", p.Strategy)
	return &w
}

// Default returns the catalog bundled with the binary. It is decoded and
// validated on first use only.
var Default = sync.OnceValues(func() (*Catalog, error) {
	return LoadCatalog(content.FS)
})

// MustDefault returns the bundled catalog and panics if its content is
// invalid. Binaries call it at startup to fail fast.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("bundled catalog is invalid: %v", err))
	}
	return c
}
