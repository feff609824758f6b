package choice

// Handle is the slice of a Model that option rows and groups are given when
// they are constructed. It replaces any ambient lookup of the owning select.
type Handle[V comparable] interface {
	Register(o Option[V]) bool
	Unregister(id V) bool
	RegisterGroup(g Group) bool
	UnregisterGroup(name string) bool
	Select(id V) bool
	IsSelected(id V) bool
	IsActive(id V) bool
	SetActive(id V) bool
	Label(v V) string
	Search() string
	Multiple() bool
}

var _ Handle[string] = (*Model[string])(nil)
