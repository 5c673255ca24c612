// Command glitzreflect prints the vertex attributes and resource slots of a
// WGSL vertex/fragment shader pair, as a WebGL2 program built from them
// would report them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/driver/headless"
	"github.com/gogpu/glitz/reflection"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "glitzreflect:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("glitzreflect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		vertexPath   = fs.String("vs", "", "WGSL file with the vertex entry point")
		fragmentPath = fs.String("fs", "", "WGSL file with the fragment entry point (defaults to -vs)")
		verbose      = fs.Bool("v", false, "log driver activity to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *vertexPath == "" {
		fs.Usage()
		return errors.New("-vs is required")
	}
	if *fragmentPath == "" {
		*fragmentPath = *vertexPath
	}
	if *verbose {
		glitz.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	vs, err := os.ReadFile(*vertexPath)
	if err != nil {
		return err
	}
	frag, err := os.ReadFile(*fragmentPath)
	if err != nil {
		return err
	}
	prog, err := reflectProgram(string(vs), string(frag))
	if err != nil {
		return err
	}
	return printProgram(stdout, prog)
}

// reflectProgram links the two stages on a headless device and reflects the
// resulting program.
func reflectProgram(vertexSource, fragmentSource string) (*reflection.Program, error) {
	dev := headless.New()
	vs, err := dev.CreateShader(driver.StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := dev.CreateShader(driver.StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	p, err := dev.CreateProgram()
	if err != nil {
		return nil, err
	}
	dev.AttachShader(p, vs)
	dev.AttachShader(p, fs)
	if err := dev.LinkProgram(p); err != nil {
		return nil, err
	}
	return reflection.Reflect(dev, p)
}

func printProgram(w io.Writer, prog *reflection.Program) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ATTRIBUTE\tLOCATION\tTYPE")
	for _, a := range prog.Attributes {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", a.Name, a.Location, a.Type)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "RESOURCE\tKIND\tDETAIL")
	for _, r := range prog.Resources {
		switch r.Kind {
		case reflection.SlotUniformBlock:
			fmt.Fprintf(tw, "%s\t%s\tindex %d, %d bytes\n", r.Identifier.Name(), r.Kind, r.Block.Index, r.Block.DataSize)
			for _, u := range r.Block.Units {
				fmt.Fprintf(tw, "\t\t%s\n", u)
			}
		case reflection.SlotTextureSampler:
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Identifier.Name(), r.Kind, r.Sampler.Kind)
		}
	}
	return tw.Flush()
}
