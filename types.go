package sand

/*
types.go defines the closed set of atomic sand-value types recognized by
the grammar (spec §3) and the process-wide [Config] governing the two
optional extended checks of spec §4.5.
*/

/*
TypeID names one of the seven atomic sand-value types. It plays the role
the teacher's numeric-OID keys play in its own syntax registry (syn.go):
a stable, human-readable key shared between the grammar descriptors and
the matcher registry.
*/
type TypeID string

const (
	QuotedString TypeID = "QUOTEDSTRING"
	QuotedURI    TypeID = "QUOTEDURI"
	QuotedURN    TypeID = "QUOTEDURN"
	Int          TypeID = "INT"
	ByteRange    TypeID = "BYTERANGE"
	DateTime     TypeID = "DATETIME"
	List         TypeID = "LIST"
)

/*
Config carries the two process-wide, read-only extended-check toggles
described in spec §4.5 and §6. Both default to false (MPEG-strict
conformance); a caller who wants the additional, non-normative checks
constructs one explicitly rather than mutating a package global, so that
concurrent [CheckHeader] calls never race on shared state (spec §5).
*/
type Config struct {
	// WeightPresentIfStrategyRequires enables the SharedResourceAllocation
	// rule requiring "weight" whenever "allocationStrategy" names one of
	// the three URNs that mandate it.
	WeightPresentIfStrategyRequires bool

	// OperationPointsConsistentAttributeList enables the
	// SharedResourceAllocation rule requiring every item of the
	// operation-point list to carry the same set of optional attributes.
	OperationPointsConsistentAttributeList bool
}

/*
DefaultConfig returns the MPEG-strict [Config], with both extended checks
disabled.
*/
func DefaultConfig() Config {
	return Config{}
}
