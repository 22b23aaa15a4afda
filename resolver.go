package assetexpl

// Selection is what the user picked: a language and an index key.
type Selection struct {
	Language Language
	Index    string
}

// View is everything the presentation layer needs for one render.
type View struct {
	Selection Selection
	Profile   Profile
	Labels    Labels
}

// DefaultSelection returns the selection rendered before any user
// interaction: the first language and its first index.
func (c *Catalog) DefaultSelection() Selection {
	lang := languages[0]
	return Selection{Language: lang, Index: c.contents[lang].keys[0]}
}

// Resolve returns the view for sel. It is a pure lookup: the same selection
// always yields the same view, and an unknown language or index fails with the
// catalog's *NotFoundError.
func (c *Catalog) Resolve(sel Selection) (View, error) {
	labels, err := c.Labels(sel.Language)
	if err != nil {
		return View{}, err
	}
	p, err := c.Profile(sel.Language, sel.Index)
	if err != nil {
		return View{}, err
	}
	return View{Selection: sel, Profile: p, Labels: labels}, nil
}

// Clamp replaces an unknown language or index of sel by its default, so that
// Resolve(Clamp(sel)) never fails.
func (c *Catalog) Clamp(sel Selection) Selection {
	if _, ok := c.contents[sel.Language]; !ok {
		sel.Language = languages[0]
	}
	if _, ok := c.contents[sel.Language].profiles[sel.Index]; !ok {
		sel.Index = c.contents[sel.Language].keys[0]
	}
	return sel
}

// Metrics returns the risk/return metrics with their labels, in display order.
func (v View) Metrics() []Metric {
	return v.Profile.Risk.Metrics(v.Labels.Metrics)
}

// Series returns the chart series of kind for breakdown b.
func (v View) Series(b Breakdown, kind SeriesKind) (Series, error) {
	c, err := v.Profile.Composition.Get(b)
	if err != nil {
		return Series{}, err
	}
	n, err := Normalize(c)
	if err != nil {
		return Series{}, err
	}
	return n.Series(kind)
}

// Chart is a titled series.
type Chart struct {
	Breakdown Breakdown
	Title     string
	Series    Series
}

// Charts returns the charts of the statistics section: the geographic
// composition as a proportional series and the sector composition as a ranked
// one.
func (v View) Charts() ([]Chart, error) {
	layout := []struct {
		b    Breakdown
		kind SeriesKind
	}{
		{Geographic, Proportional},
		{Sectors, Ranked},
	}
	charts := make([]Chart, 0, len(layout))
	for _, l := range layout {
		s, err := v.Series(l.b, l.kind)
		if err != nil {
			return nil, err
		}
		charts = append(charts, Chart{Breakdown: l.b, Title: v.Labels.Charts.Get(l.b), Series: s})
	}
	return charts, nil
}
