package vtcore

// StartHyperlink opens a hyperlink (OSC 8): subsequent printed cells carry
// it until EndHyperlink. An empty uri closes any open hyperlink, matching
// the spec's "OSC 8 ;; ST" reset form.
func (t *Terminal) StartHyperlink(uri, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if uri == "" {
		t.currentHyperlink = nil
		return nil
	}
	t.currentHyperlink = &Hyperlink{URI: uri, ID: id}
	return nil
}

// EndHyperlink closes any open hyperlink.
func (t *Terminal) EndHyperlink() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentHyperlink = nil
}
