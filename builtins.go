package main

// StandardRegistry returns a new registry holding the standard builtins.
func StandardRegistry() *Registry {
	reg := NewRegistry()
	for _, def := range standardBuiltins {
		reg.MustRegister(def.name, def.fn)
	}
	return reg
}

var standardBuiltins = []struct {
	name string
	fn   BuiltinFunc
}{
	{"@", bind},
	{"swap", swap},
	{"make-vec", makeVec},
	{"vpush!", vecPush},
	{"vget", vecGet},

	{"show-ctx", showCtx},
	{"show-top", showTop},
	{"show-stack", showStack},
	{"show-env", showEnv},
}

// Name     Stack              Function
//   @      value sym --       bind the symbol's name to value
func bind(c *Context) error {
	args, err := c.Stack.PopN("@", 2)
	if err != nil {
		return err
	}
	val, top := args[0], args[1]
	sym, ok := top.(Symbol)
	if !ok {
		return TypeError{Op: "@", Want: KindSymbol, Got: top}
	}
	c.logf("@", "%v = %v", sym.Name, val)
	c.Env.Insert(sym.Name, val)
	return nil
}

// Name     Stack              Function
//  swap    a b -- b a         exchange the top two values
func swap(c *Context) error {
	args, err := c.Stack.PopN("swap", 2)
	if err != nil {
		return err
	}
	c.Push(args[1])
	c.Push(args[0])
	return nil
}

// Name       Stack            Function
// make-vec   -- vec           push a new empty vec
func makeVec(c *Context) error {
	c.Push(Vec{})
	return nil
}

// Name     Stack              Function
// vpush!   vec val -- vec     append val to vec
func vecPush(c *Context) error {
	args, err := c.Stack.PopN("vpush!", 2)
	if err != nil {
		return err
	}
	vec, ok := args[0].(Vec)
	if !ok {
		c.Push(args[0])
		return TypeError{Op: "vpush!", Want: KindVec, Got: args[0]}
	}
	c.Push(append(vec, args[1]))
	return nil
}

// Name     Stack              Function
//  vget    vec i -- val       push the i-th element of vec
func vecGet(c *Context) error {
	args, err := c.Stack.PopN("vget", 2)
	if err != nil {
		return err
	}
	at, ok := args[1].(Int)
	if !ok {
		return TypeError{Op: "vget", Want: KindInt, Got: args[1]}
	}
	vec, ok := args[0].(Vec)
	if !ok {
		return TypeError{Op: "vget", Want: KindVec, Got: args[0]}
	}
	if at < 0 || int64(at) >= int64(len(vec)) {
		return IndexError{Op: "vget", Index: at, Len: len(vec)}
	}
	c.Push(Clone(vec[at]))
	return nil
}

func showCtx(c *Context) error {
	return ctxDumper{c: c, out: c.Output()}.dump()
}

func showTop(c *Context) error {
	return ctxDumper{c: c, out: c.Output()}.dumpTop()
}

func showStack(c *Context) error {
	return ctxDumper{c: c, out: c.Output()}.dumpStack()
}

func showEnv(c *Context) error {
	return ctxDumper{c: c, out: c.Output()}.dumpEnv()
}
