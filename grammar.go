package sand

/*
grammar.go declares the per-message grammar descriptors of spec §4.4. Each
[Grammar] replaces the Python original's dict-with-a-sentinel-tuple-key
(MANDATORY = ()) with an explicit struct field, per the REDESIGN FLAGS of
spec §9.
*/

/*
Grammar describes the attributes legal at one level of a sand-object: which
are mandatory, what atomic type each expects, and -- optionally -- the
grammar governing a nested sand-list's items.
*/
type Grammar struct {
	Mandatory []string
	Attrs     map[string]TypeID
	List      *Grammar
}

func (g *Grammar) hasList() bool { return g.List != nil }

func (g *Grammar) isMandatory(name string) bool {
	for _, m := range g.Mandatory {
		if m == name {
			return true
		}
	}
	return false
}

/*
envelopeAttrs and commonAttrs implement spec §3's "Enveloppe attributes"
and "Common attributes": present at the top of any message, before any
message-specific attribute, and nowhere else.
*/
var envelopeAttrs = map[string]TypeID{
	"senderId":       QuotedString,
	"generationTime": DateTime,
}

var commonAttrs = map[string]TypeID{
	"messageId":    Int,
	"validityTime": DateTime,
}

func isEnvelopeAttr(name string) bool { _, ok := envelopeAttrs[name]; return ok }
func isCommonAttr(name string) bool   { _, ok := commonAttrs[name]; return ok }

/*
mergeTopLevel unions the enveloppe and common attribute maps into a
message's own top-level grammar, concatenating all three MANDATORY sets
(spec §4.4). The message grammar itself is never mutated; a new Grammar
is returned.
*/
func mergeTopLevel(msg Grammar) Grammar {
	merged := Grammar{
		Attrs: make(map[string]TypeID, len(msg.Attrs)+len(envelopeAttrs)+len(commonAttrs)),
		List:  msg.List,
	}
	for k, v := range envelopeAttrs {
		merged.Attrs[k] = v
	}
	for k, v := range commonAttrs {
		merged.Attrs[k] = v
	}
	for k, v := range msg.Attrs {
		merged.Attrs[k] = v
	}
	merged.Mandatory = append(merged.Mandatory, msg.Mandatory...)
	return merged
}

/*
messageGrammars maps each SAND message class to its grammar descriptor, as
enumerated in spec §4.4. Keys match the grammarKey field of the
[headerCheckers] entries in dispatcher.go.
*/
var messageGrammars = map[string]Grammar{
	"AnticipatedRequests": {
		Mandatory: []string{"list"},
		Attrs:     map[string]TypeID{},
		List: &Grammar{
			Mandatory: []string{"sourceUrl", "targetTime"},
			Attrs: map[string]TypeID{
				"sourceUrl":  QuotedURI,
				"targetTime": DateTime,
				"range":      ByteRange,
			},
		},
	},
	"SharedResourceAllocation": {
		Mandatory: []string{"list"},
		Attrs: map[string]TypeID{
			"weight":             Int,
			"allocationStrategy": QuotedURN,
			"mpdUrl":             QuotedURI,
		},
		List: &Grammar{
			Mandatory: []string{"bandwidth"},
			Attrs: map[string]TypeID{
				"bandwidth":     Int,
				"quality":       Int,
				"minBufferTime": Int,
			},
		},
	},
	"AcceptedAlternatives": {
		Mandatory: []string{"list"},
		Attrs:     map[string]TypeID{},
		List:      alternativesListGrammar(),
	},
	"AbsoluteDeadline": {
		Mandatory: []string{"deadline"},
		Attrs: map[string]TypeID{
			"deadline": DateTime,
		},
	},
	"MaxRTT": {
		Mandatory: []string{"maxRTT"},
		Attrs: map[string]TypeID{
			"maxRTT": Int,
		},
	},
	"NextAlternatives": {
		Mandatory: []string{"list"},
		Attrs:     map[string]TypeID{},
		List:      alternativesListGrammar(),
	},
	"ClientCapabilities": {
		Mandatory: []string{},
		Attrs: map[string]TypeID{
			"supportedMessage": List,
			"messageSetUri":    QuotedURN,
		},
	},
	"DeliveredAlternative": {
		Mandatory: []string{"contentLocation"},
		Attrs: map[string]TypeID{
			"initialUrl":      QuotedURI,
			"contentLocation": QuotedURI,
		},
	},
	// BwInformation is not part of spec.md proper: it supplements the
	// distilled spec with a message class present in
	// original_source/tests/sand/header.py's BwInformationChecker but
	// dropped by the distillation (see SPEC_FULL.md §11).
	"BwInformation": {
		Mandatory: []string{},
		Attrs: map[string]TypeID{
			"minBandwidth": Int,
			"maxBandwidth": Int,
		},
	},
}

/*
alternativesListGrammar is shared by AcceptedAlternatives and
NextAlternatives, which spec §4.4 defines identically.
*/
func alternativesListGrammar() *Grammar {
	return &Grammar{
		Mandatory: []string{"sourceUrl"},
		Attrs: map[string]TypeID{
			"sourceUrl":     QuotedURI,
			"range":         ByteRange,
			"bandwidth":     Int,
			"deliveryScope": Int,
		},
	}
}
