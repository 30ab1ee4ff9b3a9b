package sand

/*
tree.go implements the parse tree produced by [checkObject]/[checkList]:
sand-objects, sand-lists and sand-values (spec §3). Every node is owned by
the caller of the top-level check; the tree contains no cycles and no
shared sub-structure, and its lifetime never outlives the [CheckHeader] or
[CheckHeaders] call that built it.
*/

/*
Object represents a parsed sand-object: a mapping of attribute name to the
raw, unmodified matched value string, plus at most one nested [List].
*/
type Object struct {
	Attrs     map[string]string
	List      *List
	CharCount int
}

func newObject() *Object {
	return &Object{Attrs: make(map[string]string)}
}

/*
Has returns true if the named attribute was found on the receiver during
parsing.
*/
func (o *Object) Has(name string) bool {
	_, ok := o.Attrs[name]
	return ok
}

/*
Get returns the raw matched value of the named attribute, and whether it
was present.
*/
func (o *Object) Get(name string) (string, bool) {
	v, ok := o.Attrs[name]
	return v, ok
}

/*
List represents a parsed sand-list: an ordered sequence of sand-objects
delimited by ';' and terminated by ']'. Closed is false if the input ran
out before a terminating ']' was found.
*/
type List struct {
	Items     []*Object
	Closed    bool
	CharCount int
}

/*
Value represents a single parsed sand-value: the raw matched substring and
the number of input characters it consumed.
*/
type Value struct {
	Data      string
	CharCount int
}
