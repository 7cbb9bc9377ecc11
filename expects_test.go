package main

// @generated from eval_test.go

//go:generate go run scripts/gen_expects.go -- eval_test.go expects_test.go

import "time"

func withEvalOptions(opts ...Option) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withOptions(opts...)
	}
}

func withEvalPolicy(pol FaultPolicy) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withPolicy(pol)
	}
}

func withEvalMaxDepth(depth int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withMaxDepth(depth)
	}
}

func withEvalSource(src string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withSource(src)
	}
}

func withEvalNamedSource(name string, src string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withNamedSource(name, src)
	}
}

func withEvalStack(values ...Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withStack(values...)
	}
}

func withEvalBinding(name string, val Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withBinding(name, val)
	}
}

func withEvalTimeout(timeout time.Duration) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withTimeout(timeout)
	}
}

func expectEvalError(err error) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectError(err)
	}
}

func expectEvalStack(values ...Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectStack(values...)
	}
}

func expectEvalBinding(name string, val Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectBinding(name, val)
	}
}

func expectEvalUnbound(name string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectUnbound(name)
	}
}

func expectEvalFaults(errs ...error) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectFaults(errs...)
	}
}

func expectEvalOutput(output string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectOutput(output)
	}
}

func expectEvalDiagnostics(diag string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectDiagnostics(diag)
	}
}

func expectEvalDump(dump string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectDump(dump)
	}
}
