package sand

import "errors"

/*
errs.go collects the error constructors used internally while a header
value is being analyzed. The only error value here, errStopParsing, marks
a fatal stop inside the parser and never reaches callers: the public entry
points ([CheckHeader], [CheckHeaders] and their WithConfig variants) report
diagnostics as plain message strings -- see spec §7 for the rationale.
*/

func errorTxt(txt string) error {
	return errors.New(txt)
}

var errStopParsing = errorTxt("sand: fatal parse error, unwinding")
