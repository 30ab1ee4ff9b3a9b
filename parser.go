package sand

import "fmt"

/*
parser.go implements the generic single-pass, single-threaded recursive
descent parser of spec §4.3: sand-object, sand-list and sand-value
analysis, mandatory/ordering/uniqueness enforcement, and the non-fatal
versus fatal error policy.

Each call to [checkSyntax] owns a fresh [parseContext] -- no state persists
between calls and none is shared across goroutines (spec §5, and the
"shared mutable state" REDESIGN FLAG of spec §9). Where the Python
original raised ParsingStopped to unwind the recursion, every frame here
instead returns errStopParsing and every caller checks for it on return.
*/

type parseContext struct {
	errors  []string
	envOpen bool // set by newParseContext; not consulted by applyOrdering
	comOpen bool // set by newParseContext; not consulted by applyOrdering
	locked  bool // true once the first message-specific attribute is seen; decides both ordering rules
}

func newParseContext() *parseContext {
	return &parseContext{envOpen: true, comOpen: true}
}

func (c *parseContext) addError(msg string) {
	c.errors = append(c.errors, msg)
}

func positionSuffix(itemNumber *int) string {
	if itemNumber == nil {
		return ""
	}
	return fmt.Sprintf(" for object at position %d", *itemNumber)
}

/*
checkSyntax is the entry point used by dispatcher.go: it parses input
against grammar (already merged with the enveloppe/common attributes when
applicable) and returns the resulting [Object] -- nil if a fatal error
stopped parsing before any usable tree could be produced -- alongside the
accumulated diagnostics.
*/
func checkSyntax(grammar Grammar, input string) (*Object, []string) {
	ctx := newParseContext()
	obj, err := checkObject(ctx, &grammar, input, true, nil)
	if err != nil {
		return nil, ctx.errors
	}
	return obj, ctx.errors
}

/*
checkObject parses one sand-object: a comma-separated sequence of
sand-attributes and at most one nested sand-list (spec §4.3).
*/
func checkObject(ctx *parseContext, grammar *Grammar, input string, firstLevel bool, itemNumber *int) (*Object, error) {
	result := newObject()
	suffix := positionSuffix(itemNumber)

	for len(input) > 0 {
		itemLength := 0

		if input[0] == '[' {
			if result.List != nil {
				ctx.addError("Only one list is allowed" + suffix + ".")
			} else if !grammar.hasList() {
				ctx.addError("Unexpected sand-list found" + suffix + ". Stopping parsing.")
				return result, errStopParsing
			}

			sub, err := checkList(ctx, grammar.List, input)
			if err != nil {
				return result, err
			}
			result.List = sub
			itemLength += sub.CharCount
			if !sub.Closed {
				if grammar.hasList() {
					ctx.addError("Unmatched '[' to close sand-list" + suffix + ".")
				} else {
					ctx.addError("Unexpected '[' found (and no closing ']')" + suffix + ".")
				}
			}
		} else {
			var err error
			itemLength, err = checkAttribute(ctx, grammar, result, input, firstLevel, suffix)
			if err != nil {
				return result, err
			}
		}

		input = input[itemLength:]
		result.CharCount += itemLength

		if len(input) > 0 {
			if input[0] == ',' {
				result.CharCount++
				input = input[1:]
				continue
			}
			if firstLevel {
				ctx.addError(fmt.Sprintf("Expecting ',', found '%c'%s. Stopping parsing.", input[0], suffix))
				return result, errStopParsing
			}
			// Inner level: ';' or ']' ends this object normally, and
			// belongs to the enclosing list; anything else is left for
			// the enclosing context to diagnose.
			break
		}
	}

	for _, name := range grammar.Mandatory {
		if name == "list" {
			if result.List == nil {
				ctx.addError("Mandatory sand-list is missing" + suffix + ".")
			}
			continue
		}
		if !result.Has(name) {
			ctx.addError(fmt.Sprintf("Mandatory sand-attribute '%s' is missing%s.", name, suffix))
		}
	}

	return result, nil
}

/*
checkAttribute parses one "name=value" sand-attribute at the current
cursor, applies the enveloppe/common ordering rules and records it on
result. It returns the number of input characters consumed.
*/
func checkAttribute(ctx *parseContext, grammar *Grammar, result *Object, input string, firstLevel bool, suffix string) (int, error) {
	itemLength := 0

	var name, rhs string
	var hasRHS bool
	if idx := stridx(input, "="); idx >= 0 {
		name, rhs = input[:idx], input[idx+1:]
		hasRHS = true
		itemLength++ // account for '='
	} else {
		name = input
		ctx.addError("Expecting '=' for sand-attribute" + suffix + ".")
	}

	trimmedName := trimS(name)
	if !isAllAlpha(trimmedName) || trimmedName == "" {
		ctx.addError("sand-attribute name should be alphabetic" + suffix + ".")
	} else if trimmedName != name {
		ctx.addError("no space allowed around sand-attribute name" + suffix + ".")
	}
	itemLength += len(name)

	if hasRHS && trimS(rhs) == "" {
		ctx.addError("Empty value for sand-attribute after '='" + suffix + ".")
	}

	attrName := trimmedName
	typ, known := grammar.Attrs[attrName]
	if !known {
		ctx.addError(fmt.Sprintf("Unexpected sand-attribute name '%s'%s. Stopping parsing.", attrName, suffix))
		return itemLength, errStopParsing
	}

	val := checkValue(ctx, typ, input[itemLength:], suffix)
	itemLength += val.CharCount

	if result.Has(attrName) {
		ctx.addError(fmt.Sprintf("sand-attribute %s should occur only once%s.", attrName, suffix))
	}

	applyOrdering(ctx, attrName, firstLevel, suffix)

	result.Attrs[attrName] = val.Data

	return itemLength, nil
}

/*
applyOrdering implements the enveloppe/common ordering state machine of
spec §4.7: the phases are only meaningful at the top level, and lock
permanently the moment a message-specific attribute is observed there.
*/
func applyOrdering(ctx *parseContext, name string, firstLevel bool, suffix string) {
	isEnv := isEnvelopeAttr(name)
	isCom := isCommonAttr(name)

	if isEnv {
		if ctx.locked || !firstLevel {
			ctx.addError("Enveloppe attributes should appear first" + suffix + ".")
		}
		return
	}
	if isCom {
		if ctx.locked || !firstLevel {
			ctx.addError("Common attributes should appear first" + suffix + ".")
		}
		return
	}
	if firstLevel {
		ctx.locked = true
	}
}

/*
checkList parses one sand-list: "[" obj (";" obj)* "]" (spec §4.3).
*/
func checkList(ctx *parseContext, itemGrammar *Grammar, input string) (*List, error) {
	result := &List{CharCount: 1}
	input = input[1:]
	itemNumber := 0

	for len(input) > 0 && input[0] != ']' {
		itemNumber++
		n := itemNumber
		item, err := checkObject(ctx, itemGrammar, input, false, &n)
		result.CharCount += item.CharCount
		result.Items = append(result.Items, item)
		if err != nil {
			return result, err
		}
		input = input[item.CharCount:]

		if len(input) > 0 {
			if input[0] == ';' {
				result.CharCount++
				input = input[1:]
				if len(input) > 0 && input[0] == ']' {
					ctx.addError("Empty element at end of sand-list.")
				}
				continue
			}
			if input[0] != ']' {
				ctx.addError(fmt.Sprintf("Expecting ';' or ']', found '%c'. Stopping parsing.", input[0]))
				return result, errStopParsing
			}
		}
	}

	if len(input) > 0 {
		result.Closed = true
		result.CharCount++
	}

	return result, nil
}

/*
checkValue parses a single sand-value of the given type at the current
cursor (spec §4.3).
*/
func checkValue(ctx *parseContext, typ TypeID, input string, suffix string) Value {
	matcher, ok := typeMatchers[typ]
	if !ok {
		ctx.addError("Wrong or missing " + string(typ) + " specification" + suffix + ".")
		return Value{}
	}

	matched, ok := matcher(input)
	if !ok {
		if typ == DateTime {
			if recovered, rok := matchDateTimeRecovery(input); rok {
				ctx.addError("Wrong or missing DATETIME specification" + suffix + ".")
				return Value{Data: recovered, CharCount: len(recovered)}
			}
		}
		ctx.addError("Wrong or missing " + string(typ) + " specification" + suffix + ".")
		return Value{}
	}

	if typ == ByteRange {
		left, right, leftOK, rightOK := byteRangeBounds(matched)
		if leftOK && rightOK && left > right {
			ctx.addError("Inconsistent byte range" + suffix + ".")
		}
	}

	return Value{Data: matched, CharCount: len(matched)}
}

func isAllAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}
