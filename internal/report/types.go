package report

// Report is the output of one demo run.
type Report struct {
	App      string    `json:"app" yaml:"app"`
	Lang     string    `json:"lang" yaml:"lang"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is one titled block of labelled values.
type Section struct {
	Key     string  `json:"key" yaml:"key"`
	Title   string  `json:"title" yaml:"title"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Entry is a single labelled value. Note carries an optional remark such as a range.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Section returns the section with the given key, or nil.
func (r *Report) Section(key string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Key == key {
			return &r.Sections[i]
		}
	}
	return nil
}

// Keys returns the section keys in order.
func (r *Report) Keys() []string {
	keys := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		keys[i] = s.Key
	}
	return keys
}
