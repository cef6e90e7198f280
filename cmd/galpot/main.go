package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/galpot/internal/browse"
	"github.com/san-kum/galpot/internal/config"
	"github.com/san-kum/galpot/internal/discover"
	"github.com/san-kum/galpot/internal/helpdoc"
	"github.com/san-kum/galpot/internal/plot"
	"github.com/san-kum/galpot/internal/potential"
	"github.com/san-kum/galpot/internal/typearg"
)

var (
	showDoc  bool
	outFile  string
	longList bool
	rmax     float64
	points   int
)

var errParse = errors.New("argument parse error")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	helpShown := false
	root := newRootCmd(&helpShown)
	root.SetArgs(argv)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errParse) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 2
	}
	if helpShown {
		return 1
	}
	return 0
}

func newRootCmd(helpShown *bool) *cobra.Command {
	root := &cobra.Command{
		Use:           "galpot [potential]",
		Short:         "show the type-arg encodings of the built-in potential library",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	root.Flags().BoolVarP(&showDoc, "doc", "d", false, "print the model documentation of the given potential")
	root.Flags().BoolVarP(&longList, "long", "l", false, "print encodings with long argument lists in full")
	root.PersistentFlags().StringVarP(&outFile, "output", "o", "", "write the type-arg configure file to this path")

	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		*helpShown = true
		printUsage(c.OutOrStdout())
	})
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.ErrOrStderr(), err)
		printUsage(c.ErrOrStderr())
		return errParse
	})

	plotCmd := &cobra.Command{
		Use:   "plot [potential]",
		Short: "draw the rotation curve of a potential",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&rmax, "rmax", 4.0, "outer radius of the sampled curve")
	plotCmd.Flags().IntVar(&points, "points", 120, "number of sampled radii")

	encodeCmd := &cobra.Command{
		Use:   "encode [file.yaml]",
		Short: "encode a custom potential set described in a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "browse the supported potentials interactively",
		RunE: func(*cobra.Command, []string) error {
			return browse.Run()
		},
	}

	root.AddCommand(plotCmd, encodeCmd, browseCmd)
	return root
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "A tool to show the descriptions of the built-in potential library, helping to set the --type-arg option of the simulator.")
	fmt.Fprintln(w, "Usage: galpot [options] [potential name]")
	fmt.Fprintln(w, "       This shows the help of the given potential and the type indices for the --type-arg option.")
	fmt.Fprintln(w, "       Without a potential name, all supported potential names are listed.")
	fmt.Fprintln(w, "       For a potential requiring a long argument list, the types and arguments are not printed; use '-l' to show them.")
	fmt.Fprintln(w, "       It is suggested to use a configure file to read long argument lists.")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "    -d         : print the model documentation of the given potential")
	fmt.Fprintln(w, "                 This option only works when a potential name is provided.")
	fmt.Fprintln(w, "    -o [string]: output the type-arg to a configure file; the argument is the filename")
	fmt.Fprintln(w, "    -l         : print encodings with long argument lists in full")
	fmt.Fprintln(w, "    -h (--help): help")
	fmt.Fprintln(w, "Subcommands: plot (rotation curves), encode (yaml potential sets), browse (interactive).")
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprint(out, helpdoc.TypeArg)
		listAll(out)
		return nil
	}

	name := args[0]
	e, ok := discover.Lookup(name)
	if !ok {
		fmt.Fprintf(out, "%s is not found in the supported potential list. Available potentials are:\n", name)
		listAll(out)
		return nil
	}

	printTitle(out)
	printEntry(out, e, 0, longList)
	printSpliter(out)

	if outFile != "" {
		types, argv, err := potential.ParseAll(e.Components)
		if err != nil {
			return err
		}
		if err := typearg.WriteConf(outFile, types, argv); err != nil {
			return err
		}
		fmt.Fprintf(out, "Save type arguments of %s to file %s.\n", name, outFile)
		printSpliter(out)
	}

	if showDoc {
		fmt.Fprintf(out, "Model documentation of %s:\n", name)
		for _, p := range e.Components {
			fmt.Fprintln(out, p.Doc())
		}
		if name == "KeplerPotential" {
			fmt.Fprintln(out, helpdoc.KeplerNote)
		}
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	name := args[0]
	e, ok := discover.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown or unsupported potential: %s", name)
	}
	fmt.Fprint(cmd.OutOrStdout(), plot.Render(name, e.Components, rmax, points))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	set, err := config.Load(args[0])
	if err != nil {
		return err
	}
	comps, err := set.Build()
	if err != nil {
		return err
	}
	enc, err := typearg.Encode(comps)
	if err != nil {
		return err
	}
	if set.Name != "" {
		fmt.Fprintf(out, "%-42s %s\n", set.Name, enc)
	} else {
		fmt.Fprintln(out, enc)
	}
	if outFile != "" {
		types, argv, err := potential.ParseAll(comps)
		if err != nil {
			return err
		}
		if err := typearg.WriteConf(outFile, types, argv); err != nil {
			return err
		}
		fmt.Fprintf(out, "Save type arguments of %s to file %s.\n", args[0], outFile)
	}
	return nil
}

func printTitle(w io.Writer) {
	fmt.Fprintf(w, "%-42s %s\n", "Potential name", "Options for the simulator --type-arg with default parameters")
}

func printSpliter(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 94))
}

// printEntry renders one discovered entry, recursing over combined sets
// with extra indentation the way the listing shows component structure.
func printEntry(w io.Writer, e discover.Entry, offset int, long bool) {
	pad := strings.Repeat(" ", offset)
	if e.Kind == discover.Combined {
		fmt.Fprintf(w, "%s%-42s a combination of %d potentials:\n", pad, e.Name, len(e.Components))
		for _, p := range e.Components {
			sub := discover.Entry{Name: potential.NameOf(p), Kind: discover.Single, Components: []potential.Potential{p}}
			printEntry(w, sub, offset+4, long)
		}
		if enc, err := typearg.Encode(e.Components); err == nil {
			fmt.Fprintf(w, "%s    %-42s %s\n", pad, "Combination:", enc)
		}
		return
	}

	types, argv, err := potential.ParseAll(e.Components)
	if err != nil {
		return
	}
	if len(argv) > typearg.LongArgThreshold && !long {
		fmt.Fprintf(w, "%s%-42s long argument list, require a configure file\n", pad, e.Name)
		return
	}
	fmt.Fprintf(w, "%s%-42s %s\n", pad, e.Name, typearg.Join(types, argv))
}

func listAll(w io.Writer) {
	printTitle(w)
	printSpliter(w)
	for _, e := range discover.Scan() {
		printEntry(w, e, 0, longList)
	}
}
