package analysis

type ContextArgs struct {
	DumpOnly bool
	Files    []string
}

// Context carries the cross-file reference tally. It is created once before
// the file loop and lives for the whole run; per-file local symbols never
// touch it.
type Context struct {
	Args ContextArgs

	// Globals maps every import/export symbol name seen so far to the
	// number of patch references to it across all files.
	Globals map[string]int

	// first-encounter order of global names, for deterministic reporting
	order []string
}

func NewContext() *Context {
	return &Context{
		Globals: make(map[string]int),
	}
}

func (ctx *Context) addGlobal(name string) {
	if _, ok := ctx.Globals[name]; !ok {
		ctx.Globals[name] = 0
		ctx.order = append(ctx.order, name)
	}
}

// Unreferenced returns the global symbol names no patch in any processed
// file ever referenced, in the order they were first encountered.
func (ctx *Context) Unreferenced() []string {
	var names []string
	for _, name := range ctx.order {
		if ctx.Globals[name] == 0 {
			names = append(names, name)
		}
	}

	return names
}
