package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"btree/btree"
)

var (
	promptColor = color.New(color.FgHiBlue, color.Bold)
	errorColor  = color.New(color.FgRed)
	okColor     = color.New(color.FgGreen)
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Tree[string, string]
	visualizer *btree.Visualizer[string, string]
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Tree[string, string]) *Cli {
	v := &btree.Visualizer[string, string]{
		Tree: t,
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v}
}

// Start reads commands until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
B-Tree CLI

Available Commands:
  SET <key> <val> Insert a key-value pair into the B-Tree
  DEL <key>       Remove a key-value pair from the B-Tree
  GET <key>       Retrieve the value for key from the B-Tree
  HAS <key>       Report whether key is in the B-Tree
  LEN             Print the number of keys
  DUMP            Print the B-Tree level by level
  CHECK           Verify the B-Tree invariants
  EXIT            Terminate this session`)
}

func (c *Cli) printPrompt() {
	promptColor.Fprint(c.out, "> ")
}

// processInput handles one line and reports whether the session should go on.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		errorColor.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "has":
		c.processHasCommand(fields[1:])
	case "len":
		fmt.Fprintln(c.out, c.tree.Len())
	case "dump":
		c.printTree()
	case "check":
		c.processCheckCommand()
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) printTree() {
	fmt.Fprintln(c.out, c.tree)
	fmt.Fprint(c.out, c.visualizer.Visualize())
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	if old, replaced := c.tree.Insert(args[0], args[1]); replaced {
		fmt.Fprintf(c.out, "Key %q reassigned from %q to %q.\n", args[0], old, args[1])
	}
	c.printTree()
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <key>")
		return
	}
	val, ok := c.tree.Delete(args[0])

	if !ok {
		errorColor.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintf(c.out, "Key %q and its value %q were removed.\n", args[0], val)
	c.printTree()
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	val, err := c.tree.Find(args[0])

	if err != nil {
		errorColor.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintln(c.out, val)
}

func (c *Cli) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: HAS <key>")
		return
	}
	fmt.Fprintln(c.out, c.tree.Contains(args[0]))
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Verify(); err != nil {
		errorColor.Fprintln(c.out, err)
		return
	}
	okColor.Fprintln(c.out, "OK")
}
