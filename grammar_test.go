package sand

import "testing"

func TestGrammar_isMandatory(t *testing.T) {
	g := messageGrammars["AbsoluteDeadline"]
	if !g.isMandatory("deadline") {
		t.Errorf("%s failed: expected deadline to be mandatory", t.Name())
	}
	if g.isMandatory("senderId") {
		t.Errorf("%s failed: senderId is not part of this grammar's own Mandatory set", t.Name())
	}
}

func TestGrammar_hasList(t *testing.T) {
	ar := messageGrammars["AnticipatedRequests"]
	if !ar.hasList() {
		t.Errorf("%s failed: AnticipatedRequests must declare a list", t.Name())
	}
	g := messageGrammars["AbsoluteDeadline"]
	if g.hasList() {
		t.Errorf("%s failed: AbsoluteDeadline must not declare a list", t.Name())
	}
}

func TestMergeTopLevel(t *testing.T) {
	merged := mergeTopLevel(messageGrammars["MaxRTT"])

	for _, name := range []string{"senderId", "generationTime", "messageId", "validityTime", "maxRTT"} {
		if _, ok := merged.Attrs[name]; !ok {
			t.Errorf("%s failed: merged grammar is missing %s", t.Name(), name)
		}
	}

	if len(merged.Mandatory) != 1 || merged.Mandatory[0] != "maxRTT" {
		t.Errorf("%s failed: want Mandatory [maxRTT], got %v", t.Name(), merged.Mandatory)
	}

	// The message's own grammar must be untouched by the merge.
	if _, ok := messageGrammars["MaxRTT"].Attrs["senderId"]; ok {
		t.Errorf("%s failed: mergeTopLevel must not mutate the source grammar", t.Name())
	}
}

func TestMessageGrammars_allPresent(t *testing.T) {
	for _, name := range []string{
		"AnticipatedRequests",
		"SharedResourceAllocation",
		"AcceptedAlternatives",
		"AbsoluteDeadline",
		"MaxRTT",
		"NextAlternatives",
		"ClientCapabilities",
		"DeliveredAlternative",
		"BwInformation",
	} {
		if _, ok := messageGrammars[name]; !ok {
			t.Errorf("%s failed: missing grammar for %s", t.Name(), name)
		}
	}
}

func TestDeliveredAlternative_onlyContentLocationMandatory(t *testing.T) {
	g := messageGrammars["DeliveredAlternative"]
	if len(g.Mandatory) != 1 || g.Mandatory[0] != "contentLocation" {
		t.Errorf("%s failed: want Mandatory [contentLocation], got %v", t.Name(), g.Mandatory)
	}
}
