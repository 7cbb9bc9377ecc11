package main

import "testing"

// Test_session builds up a small program in layers, each test case
// re-running every prior layer before its own source and expectations.
func Test_session(t *testing.T) {
	var s session

	s.addSource("constants", `
		; plain values bound by name
		10 :ten @
		"orth" :lang @
		#t :yes @
	`, `ten lang yes`,
		expectEvalStack(Int(10), String("orth"), Boolean(true)),
		expectEvalBinding("ten", Int(10)))

	s.addSource("words", `
		; quotations bound by name run in the caller's context
		{ swap } :flip @
		{ :tmp @ tmp tmp } :dup @
		{ :tmp @ } :drop @
	`, `1 2 flip 3 dup 4 drop`,
		expectEvalStack(Int(2), Int(1), Int(3), Int(3)),
		expectEvalBinding("tmp", Int(4)))

	s.addSource("vectors", `
		{ make-vec swap vpush! } :singleton @
		{ :v @ v 0 vget } :first @
	`, `ten singleton dup first`,
		expectEvalStack(Vec{Int(10)}, Int(10)),
		expectEvalUnbound("first-item"))

	s.addSource("quoting", `
		; a quotation that leaves a quotation behind
		{ { ten dup } } :make-twin @
	`, `make-twin :twin @ twin`,
		expectEvalStack(Int(10), Int(10)),
		expectEvalBinding("twin", Quotation{Word("ten"), Word("dup")}))

	s.addSource("faults", "", `
		missing ten
		1 2 @
	`,
		expectEvalStack(Int(10)),
		expectEvalFaults(ErrUnresolvedWord, ErrTypeMismatch),
		expectEvalDiagnostics(lines(
			`missing not found`,
			`@: type mismatch: want symbol, got int 2`,
		)))

	s.addSource("strict", "", `1 missing`,
		withEvalPolicy(Strict),
		expectEvalError(ErrUnresolvedWord),
		expectEvalStack(Int(1)))

	s.tests.run(t)
}

type session struct {
	names  []string
	inputs []string
	tests  evalTestCases
}

func (s *session) addSource(
	name, input, test string,
	wraps ...func(evalTestCase) evalTestCase,
) {
	et := evalTest(name)
	for i, name := range s.names {
		et = et.withNamedSource("layer_"+name, s.inputs[i])
	}
	et = et.withNamedSource("layer_"+name, input)
	if len(test) > 0 {
		et = et.withNamedSource("layer_"+name+"_test", test)
	}
	et = et.apply(wraps...)

	s.names = append(s.names, name)
	s.inputs = append(s.inputs, input)
	s.tests = append(s.tests, et)
}
