package sand

import "fmt"

/*
dispatcher.go implements spec §4.6: the header name registry, the
check_header/check_headers entry points, and the DeliveredAlternative
cross-header rules. It plays the role the teacher's syn.go registry plays
for syntaxVerifiers, but keyed by header name instead of OID, and wired
to a post-check function rather than a single verifier.
*/

// Header pairs a raw HTTP header name with its value, as consumed by
// [CheckHeaders].
type Header struct {
	Name  string
	Value string
}

// HeaderReport is one entry of [CheckHeaders]'s result: the header name as
// supplied, and the diagnostics collected for it.
type HeaderReport struct {
	Name   string
	Errors []string
}

type postCheckFunc func(ctx *parseContext, o *Object, cfg Config)

/*
headerCheckers maps each lower-cased, SAND-relevant header name to the
message grammar key it parses against and the post-check it runs
afterward (spec §4.4/§4.5/§4.6).
*/
var headerCheckers = map[string]struct {
	grammarKey string
	postCheck  postCheckFunc
}{
	"sand-anticipatedrequests": {
		"AnticipatedRequests",
		func(ctx *parseContext, o *Object, _ Config) { postCheckAnticipatedRequests(ctx, o) },
	},
	"sand-sharedresourceallocation": {
		"SharedResourceAllocation",
		func(ctx *parseContext, o *Object, cfg Config) { postCheckSharedResourceAllocation(ctx, o, cfg) },
	},
	"sand-acceptedalternatives": {
		"AcceptedAlternatives",
		func(ctx *parseContext, o *Object, _ Config) { postCheckAcceptedAlternatives(ctx, o) },
	},
	"sand-absolutedeadline": {
		"AbsoluteDeadline",
		nil,
	},
	"sand-maxrtt": {
		"MaxRTT",
		nil,
	},
	"sand-nextalternatives": {
		"NextAlternatives",
		func(ctx *parseContext, o *Object, _ Config) { postCheckNextAlternatives(ctx, o) },
	},
	"sand-clientcapabilities": {
		"ClientCapabilities",
		func(ctx *parseContext, o *Object, _ Config) { postCheckClientCapabilities(ctx, o) },
	},
	"sand-deliveredalternative": {
		"DeliveredAlternative",
		nil,
	},
	"sand-bwinformation": {
		"BwInformation",
		func(ctx *parseContext, o *Object, _ Config) { postCheckBwInformation(ctx, o) },
	},
}

const headerNameNotSupported = "Header name not supported by this version of conformance server."

/*
CheckHeader checks a single HTTP header name/value pair against the SAND
header grammar and returns its diagnostics -- an empty slice denotes
conformance (spec §6). It uses [DefaultConfig].
*/
func CheckHeader(name, value string) []string {
	return CheckHeaderWithConfig(name, value, DefaultConfig())
}

/*
CheckHeaderWithConfig is [CheckHeader] with an explicit [Config], letting a
caller enable the two optional extended checks of spec §4.5.
*/
func CheckHeaderWithConfig(name, value string, cfg Config) []string {
	key := lc(name)
	entry, known := headerCheckers[key]
	if !known {
		return []string{headerNameNotSupported}
	}

	grammar := mergeTopLevel(messageGrammars[entry.grammarKey])
	obj, errs := checkSyntax(grammar, trimS(value))

	if obj != nil && entry.postCheck != nil {
		ctx := &parseContext{errors: errs}
		entry.postCheck(ctx, obj, cfg)
		errs = ctx.errors
	}

	if errs == nil {
		errs = []string{}
	}
	return errs
}

/*
CheckHeaders checks every SAND-relevant header in headers (spec §4.6) and
returns one report per such header, in encounter order. It uses
[DefaultConfig].
*/
func CheckHeaders(headers []Header) []HeaderReport {
	return CheckHeadersWithConfig(headers, DefaultConfig())
}

/*
CheckHeadersWithConfig is [CheckHeaders] with an explicit [Config].
*/
func CheckHeadersWithConfig(headers []Header, cfg Config) []HeaderReport {
	var reports []HeaderReport

	for _, h := range headers {
		key := lc(h.Name)
		if _, known := headerCheckers[key]; !known && !hasPfx(key, "sand-") {
			continue
		}

		errs := CheckHeaderWithConfig(h.Name, h.Value, cfg)
		if key == "sand-deliveredalternative" {
			errs = append(errs, checkDeliveredAlternativeSiblings(h.Value, headers)...)
		}
		reports = append(reports, HeaderReport{Name: h.Name, Errors: errs})
	}

	return reports
}

const expectedWarning = "214 Transformation Applied"

/*
checkDeliveredAlternativeSiblings implements the Warning / Content-Location
/ Vary sibling-header contract of spec §4.6, run only for the
SAND-DeliveredAlternative header.
*/
func checkDeliveredAlternativeSiblings(deliveredValue string, headers []Header) []string {
	var warning, contentLocation, vary string
	var haveWarning, haveContentLocation, haveVary bool
	otherWarning := false

	for _, h := range headers {
		switch lc(h.Name) {
		case "warning":
			v := trimS(h.Value)
			if v == expectedWarning {
				warning = v
				haveWarning = true
				otherWarning = false
			} else if !haveWarning {
				warning = v
				haveWarning = true
				otherWarning = true
			}
		case "content-location":
			contentLocation = trimS(h.Value)
			haveContentLocation = true
		case "vary":
			vary = trimS(h.Value)
			haveVary = true
		}
	}

	var errs []string

	if !haveWarning {
		errs = append(errs, "Mandatory Warning header missing for SAND-DeliveredAlternative.")
	} else if otherWarning {
		errs = append(errs, fmt.Sprintf("Warning header %q does not match expected %q.", warning, expectedWarning))
	}

	if !haveContentLocation {
		errs = append(errs, "Mandatory Content-Location header missing for SAND-DeliveredAlternative.")
	} else {
		grammar := mergeTopLevel(messageGrammars["DeliveredAlternative"])
		obj, _ := checkSyntax(grammar, trimS(deliveredValue))
		if obj != nil {
			if cl, ok := obj.Get("contentLocation"); ok {
				if unquote(cl) != contentLocation {
					errs = append(errs, "contentLocation attribute does not match the Content-Location header.")
				}
			}
		}
	}

	if !haveVary {
		errs = append(errs, "Mandatory Vary header missing for SAND-DeliveredAlternative.")
	} else if !varyAllows(vary) {
		errs = append(errs, fmt.Sprintf("Vary header %q does not permit sand-acceptedalternatives.", vary))
	}

	return errs
}

/*
varyAllows reports whether vary is "*" or contains "sand-acceptedalternatives"
among its comma-separated, case-insensitive, whitespace-trimmed values.
*/
func varyAllows(vary string) bool {
	if trimS(vary) == "*" {
		return true
	}
	for _, part := range split(vary, ",") {
		if streqf(trimS(part), "sand-acceptedalternatives") {
			return true
		}
	}
	return false
}

/*
unquote strips a single pair of surrounding double quotes, if present.
*/
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
