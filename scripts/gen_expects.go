// Command gen_expects writes a func(evalTestCase) evalTestCase wrapper for
// every with* and expect* builder method of evalTestCase, so that tests can
// pass builder steps around as values.
//
// Usage:
//
//	go run scripts/gen_expects.go -- eval_test.go expects_test.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"text/template"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "time limit for generating and formatting")
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatalln("usage: gen_expects [-timeout d] -- SOURCE DEST")
	}
	src, dest := args[0], args[1]

	builders, err := scanBuilders(src)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := generate(ctx, src, dest, builders); err != nil {
		log.Fatalln(err)
	}
}

var builderMethod = regexp.MustCompile(`func \(et evalTestCase\) (expect|with)(.+?)\((.+?)\) evalTestCase`)

// builder describes one evalTestCase method and its generated wrapper.
type builder struct {
	Name    string
	Wrapper string
	Params  string
	Args    string
}

func scanBuilders(name string) ([]builder, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var builders []builder
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		match := builderMethod.FindStringSubmatch(sc.Text())
		if match == nil {
			continue
		}
		b, err := newBuilder(match[1], match[2], match[3])
		if err != nil {
			return nil, fmt.Errorf("%v: %w", name, err)
		}
		builders = append(builders, b)
	}
	return builders, sc.Err()
}

// newBuilder requires each parameter to be declared with its own type.
func newBuilder(base, what, params string) (builder, error) {
	b := builder{
		Name:    base + what,
		Wrapper: base + "Eval" + what,
		Params:  params,
	}
	var args []string
	for _, param := range strings.Split(params, ",") {
		fields := strings.Fields(param)
		if len(fields) != 2 {
			return b, fmt.Errorf("%v: parameter %q must name its own type", b.Name, strings.TrimSpace(param))
		}
		arg := fields[0]
		if strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	b.Args = strings.Join(args, ", ")
	return b, nil
}

var wrappers = template.Must(template.New("expects").Parse(`package main

// @generated from {{.Source}}

//go:generate go run scripts/gen_expects.go -- {{.Source}} {{.Dest}}
{{range .Builders}}
func {{.Wrapper}}({{.Params}}) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.{{.Name}}({{.Args}})
	}
}
{{end}}`))

// generate renders wrappers through goimports, which adds any imports the
// wrapper signatures need, into dest.
func generate(ctx context.Context, src, dest string, builders []builder) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	eg, ctx := errgroup.WithContext(ctx)
	pr, pw := io.Pipe()

	goimports := exec.CommandContext(ctx, "goimports")
	goimports.Stdin = pr
	goimports.Stdout = out
	goimports.Stderr = os.Stderr

	eg.Go(func() error {
		if err := goimports.Run(); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("goimports failed: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		err := wrappers.Execute(pw, struct {
			Source, Dest string
			Builders     []builder
		}{src, dest, builders})
		pw.CloseWithError(err)
		return err
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return out.Close()
}
