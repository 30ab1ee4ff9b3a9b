package sand

import "fmt"

/*
postchecks.go implements the message-class semantic rules layered on top
of the generic parse (spec §4.5). Every diagnostic produced here is
non-fatal, and these checks only run when the generic parser returned an
object at all.
*/

func postCheckAnticipatedRequests(ctx *parseContext, o *Object) {
	if o.List == nil || len(o.List.Items) == 0 {
		ctx.addError("At least one request must be specified.")
	}
}

func postCheckAcceptedAlternatives(ctx *parseContext, o *Object) {
	if o.List == nil || len(o.List.Items) == 0 {
		ctx.addError("At least one alternative must be specified.")
	}
}

func postCheckNextAlternatives(ctx *parseContext, o *Object) {
	if o.List == nil || len(o.List.Items) == 0 {
		ctx.addError("At least one alternative must be specified.")
	}
}

// sharedAllocationStrategiesRequiringWeight are the URN values of
// "allocationStrategy" that mandate the presence of "weight", per spec
// §4.5.
var sharedAllocationStrategiesRequiringWeight = map[string]bool{
	`"urn:mpeg:dash:sand:allocation:premium-privileged:2016"`: true,
	`"urn:mpeg:dash:sand:allocation:everybody-served:2016"`:   true,
	`"urn:mpeg:dash:sand:allocation:weighted:2016"`:           true,
}

func postCheckSharedResourceAllocation(ctx *parseContext, o *Object, cfg Config) {
	if o.List == nil || len(o.List.Items) == 0 {
		ctx.addError("At least one operation point must be specified.")
	}

	if cfg.WeightPresentIfStrategyRequires {
		if strategy, ok := o.Get("allocationStrategy"); ok {
			if sharedAllocationStrategiesRequiringWeight[strategy] {
				if !o.Has("weight") {
					ctx.addError(fmt.Sprintf("Attribute weight is mandatory for strategy %s.", strategy))
				}
			}
		}
	}

	if cfg.OperationPointsConsistentAttributeList && o.List != nil && len(o.List.Items) > 1 {
		listGrammar := messageGrammars["SharedResourceAllocation"].List
		first := optionalAttributes(o.List.Items[0], listGrammar)
		for _, item := range o.List.Items[1:] {
			if !sameAttrSet(first, optionalAttributes(item, listGrammar)) {
				ctx.addError("Optional attributes are not consistent through the list of operation points.")
				break
			}
		}
	}
}

/*
optionalAttributes extracts the set of non-mandatory attribute names
present on obj, per grammar. It is a utility for the
operation-points-consistency check, mirroring the teacher's habit of
small, purpose-built set helpers over generic collection abstractions.
*/
func optionalAttributes(obj *Object, grammar *Grammar) map[string]bool {
	result := make(map[string]bool)
	for name := range grammar.Attrs {
		if grammar.isMandatory(name) {
			continue
		}
		if obj.Has(name) {
			result[name] = true
		}
	}
	return result
}

func sameAttrSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// clientCapabilitiesMessageSets maps a registered messageSetUri to the set
// of supported message codes it implies (spec §4.5). The only registered
// URN at this time is the "all" set.
var clientCapabilitiesMessageSets = map[string][]string{
	`"urn:mpeg:dash:sand:messageset:all:2016"`: {
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "13", "14", "15", "16", "17", "18", "19", "20", "21",
	},
}

func postCheckClientCapabilities(ctx *parseContext, o *Object) {
	_, hasSupported := o.Get("supportedMessage")
	uri, hasURI := o.Get("messageSetUri")

	if !hasSupported && !hasURI {
		ctx.addError("At least one of supportedMessage or messageSetUri must be specified.")
		return
	}

	codes := make(map[string]bool)

	if hasSupported {
		raw, _ := o.Get("supportedMessage")
		for _, code := range splitListCodes(raw) {
			codes[code] = true
		}
		if codes["0"] {
			ctx.addError("supportedMessage should not include reserved code 0.")
		}
	}

	if hasURI {
		set, known := clientCapabilitiesMessageSets[uri]
		if !known {
			ctx.addError(fmt.Sprintf("%s is not a known urn.", uri))
			// Assume code 12 is supplied, so the consequent
			// "must include code 12" error is not also raised.
			codes["12"] = true
		} else {
			for _, code := range set {
				codes[code] = true
			}
		}
	}

	if !codes["12"] {
		ctx.addError("supportedMessage must include code 12 (ClientCapabilities).")
	}
}

/*
splitListCodes extracts the comma-separated decimal codes carried inside
a matched LIST value's brackets, e.g. "[1,2,12]" -> ["1","2","12"].
An empty list "[]" yields no codes.
*/
func splitListCodes(raw string) []string {
	if len(raw) < 2 {
		return nil
	}
	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return nil
	}
	return split(inner, ",")
}

func postCheckBwInformation(ctx *parseContext, o *Object) {
	minRaw, hasMin := o.Get("minBandwidth")
	maxRaw, hasMax := o.Get("maxBandwidth")

	if !hasMin && !hasMax {
		ctx.addError("At least one of minBandwidth or maxBandwidth should be specified.")
		return
	}
	if hasMin && hasMax {
		minBW, errMin := atoi(minRaw)
		maxBW, errMax := atoi(maxRaw)
		if errMin == nil && errMax == nil && maxBW < minBW {
			ctx.addError("The value of maxBandwidth should be greater or equal than minBandwidth.")
		}
	}
}
