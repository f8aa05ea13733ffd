package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/chomsky/cnf"
	"github.com/npillmayer/chomsky/cyk"
	"github.com/npillmayer/chomsky/grammar"
)

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := newApp().Run(os.Args); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

// newApp sets up commands and flags. Errors implementing cli.ExitCoder
// terminate the process with their exit code.
func newApp() *cli.App {
	return &cli.App{
		Name:  "cyk",
		Usage: "normalize context-free grammars and recognize sentences",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "trace",
				Value: "Error",
				Usage: "trace level [Debug|Info|Error]",
			},
		},
		Before: func(c *cli.Context) error {
			setTraceLevel(c.String("trace"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "cnf",
				Usage:     "print the Chomsky Normal Form of a grammar",
				ArgsUsage: "GRAMMAR",
				Action:    cnfCmd,
			},
			{
				Name:      "check",
				Usage:     "check sentences against a grammar",
				ArgsUsage: "GRAMMAR SENTENCE…",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "table", Usage: "print the CYK table"},
					&cli.StringFlag{Name: "accept", Value: grammar.Start, Usage: "accepting symbol"},
					&cli.BoolFlag{Name: "chains", Usage: "close table cells under chain rules"},
				},
				Action: checkCmd,
			},
			{
				Name:      "repl",
				Usage:     "check sentences interactively",
				ArgsUsage: "GRAMMAR",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "table", Usage: "print the CYK table"},
					&cli.BoolFlag{Name: "chains", Usage: "close table cells under chain rules"},
				},
				Action: replCmd,
			},
		},
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(l string) {
	level := tracing.TraceLevelFromString(l)
	for _, key := range []string{"chomsky.cmd", "chomsky.grammar", "chomsky.scanner",
		"chomsky.cnf", "chomsky.cyk"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", l)
}

// loadCNF loads the grammar file given as the first argument and normalizes it.
func loadCNF(c *cli.Context) (*grammar.Grammar, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.Exit("missing grammar file argument", 2)
	}
	g, err := grammar.LoadFile(path)
	if err != nil {
		return nil, err
	}
	g.Dump() // only visible in debug mode
	return cnf.Normalize(g), nil
}

func cnfCmd(c *cli.Context) error {
	g, err := loadCNF(c)
	if err != nil {
		return err
	}
	pterm.Println(g.Name)
	pterm.DefaultTree.WithRoot(rulesTree(g)).Render()
	pterm.Info.Println(fmt.Sprintf("%d rules, start symbol %s, fingerprint %s", g.Size(), g.Start, g.Fingerprint()))
	return nil
}

// rulesTree groups the rules of g by left hand side.
func rulesTree(g *grammar.Grammar) pterm.TreeNode {
	var ll pterm.LeveledList
	for _, A := range g.Nonterminals() {
		rules := g.RulesFor(A)
		if len(rules) == 0 {
			continue
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: A})
		for _, r := range rules {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: r.String()})
		}
	}
	return pterm.NewTreeFromLeveledList(ll)
}

func checkCmd(c *cli.Context) error {
	g, err := loadCNF(c)
	if err != nil {
		return err
	}
	sentences := c.Args().Slice()[1:]
	if len(sentences) == 0 {
		return cli.Exit("no sentences to check", 2)
	}
	r := cyk.NewRecognizer(g, recognizerOptions(c, cyk.AcceptOn(c.String("accept")))...)
	rejected := 0
	for _, sentence := range sentences {
		if !check(r, sentence, c.Bool("table")) {
			rejected++
		}
	}
	if rejected > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d sentences rejected", rejected, len(sentences)), 1)
	}
	return nil
}

func recognizerOptions(c *cli.Context, opts ...cyk.Option) []cyk.Option {
	if c.Bool("chains") {
		opts = append(opts, cyk.WithChainClosure())
	}
	return opts
}

func check(r *cyk.Recognizer, sentence string, table bool) bool {
	t, accept := r.Parse(sentence)
	if table {
		printTable(t)
	}
	if accept {
		pterm.Success.Println(fmt.Sprintf("accepted: %q", sentence))
	} else {
		pterm.Error.Println(fmt.Sprintf("rejected: %q", sentence))
	}
	return accept
}

func printTable(t *cyk.Table) {
	t.Dump() // only visible with tracing enabled
	var ll pterm.LeveledList
	for _, row := range t.Rows() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: row})
	}
	if len(ll) == 0 {
		return
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func replCmd(c *cli.Context) error {
	g, err := loadCNF(c)
	if err != nil {
		return err
	}
	r := cyk.NewRecognizer(g, recognizerOptions(c)...)
	repl, err := readline.New("cyk> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println(fmt.Sprintf("grammar %s has %d rules, quit with <ctrl>D", g.Name, g.Size()))
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimRight(line, "\r\n"); line == "" {
			continue
		}
		check(r, line, c.Bool("table"))
	}
	println("Good bye!")
	return nil
}
