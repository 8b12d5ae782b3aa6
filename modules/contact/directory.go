package contact

// Directory is the immutable category-to-mailbox mapping. It is built once
// at startup and safe for concurrent use.
type Directory struct {
	recipients map[string]string
	fallback   string
}

// NewDirectory copies the given mapping so later mutation of the source map
// cannot affect routing.
func NewDirectory(recipients map[string]string, fallback string) *Directory {
	copied := make(map[string]string, len(recipients))
	for category, addr := range recipients {
		copied[category] = addr
	}
	return &Directory{recipients: copied, fallback: fallback}
}

// Resolve returns the mailbox for a category. Unknown codes resolve to the
// fallback address even though the category was already validated upstream;
// the lookup does not trust that invariant.
func (d *Directory) Resolve(category string) string {
	if addr, ok := d.recipients[category]; ok {
		return addr
	}
	return d.fallback
}
