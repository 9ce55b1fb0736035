package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mp4096/smsf/stack"
)

type Context struct {
	Debug bool
	Log   *zap.SugaredLogger
}

// calculator is what the driver needs from a stack: the shuffling
// primitives, function application and a printable rendering.
type calculator interface {
	stack.Core[float64]
	stack.Applier[float64]
	fmt.Stringer
}

// apply dispatches a single RPN word to the stack. Anything that does
// not parse as a number is tried as a word by the caller.
func apply(c calculator, word string) error {
	switch word {
	case "+":
		return stack.Add(c)
	case "-":
		return stack.Subtract(c)
	case "*":
		return stack.Multiply(c)
	case "/":
		return stack.Divide(c)
	case "neg":
		return stack.Negate(c)
	case "abs":
		return stack.Abs(c)
	case "pow":
		return stack.Pow(c)
	case "ln":
		return stack.Ln(c)
	case "log2":
		return stack.Log2(c)
	case "log10":
		return stack.Log10(c)
	case "exp":
		return stack.Exp(c)
	case "exp2":
		return stack.Exp2(c)
	case "sin":
		return stack.Sin(c)
	case "cos":
		return stack.Cos(c)
	case "tan":
		return stack.Tan(c)
	case "asin":
		return stack.Asin(c)
	case "acos":
		return stack.Acos(c)
	case "atan":
		return stack.Atan(c)
	case "atan2":
		return stack.Atan2(c)
	case "swap":
		return c.Swap()
	case "drop":
		return c.Drop()
	case "rup":
		c.RotateUp()
		return nil
	case "rdown":
		c.RotateDown()
		return nil
	case "clear":
		c.Clear()
		return nil
	case "pop":
		v, err := c.Pop()
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil
	}
	return errors.Errorf("unknown word %q", word)
}

type ReplCmd struct {
	Dynamic bool `name:"dynamic" short:"d" help:"Use an unbounded stack instead of the four-register one."`
}

func (cmd *ReplCmd) Run(ctx *Context) error {
	var c calculator
	if cmd.Dynamic {
		c = stack.NewDynamic[float64]()
	} else {
		c = stack.NewClassicZero[float64]()
	}

	ctx.Log.Debugw("starting repl", "dynamic", cmd.Dynamic)

	reader := bufio.NewReader(os.Stdin)
	for {
		print("> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		for _, tok := range strings.Fields(line) {
			if tok == "quit" {
				return nil
			}

			if v, convErr := strconv.ParseFloat(tok, 64); convErr == nil {
				c.Push(v)
				continue
			}

			if err := apply(c, tok); err != nil {
				fmt.Println(errors.Wrapf(err, "cannot apply %q", tok))
			}
		}

		print(c.String())
	}
}

type DemoCmd struct{}

// Run walks a classic stack through the shuffling primitives, then a
// float stack through a short calculation, printing after every step.
func (cmd *DemoCmd) Run(ctx *Context) error {
	st := stack.NewClassic(1, 2, 3, 4)
	fmt.Printf("%s", st)

	st.RotateUp()
	fmt.Printf("After rotation (up):\n%s", st)
	st.RotateDown()
	fmt.Printf("After rotation (down):\n%s", st)

	if err := st.Swap(); err != nil {
		return err
	}
	fmt.Printf("After swap:\n%s", st)
	if err := st.Swap(); err != nil {
		return err
	}
	fmt.Printf("After swap:\n%s", st)

	if err := st.Drop(); err != nil {
		return err
	}
	fmt.Printf("After drop:\n%s", st)

	v, err := st.Pop()
	if err != nil {
		return err
	}
	ctx.Log.Debugw("popped", "value", v)
	fmt.Printf("After pop:\n%s", st)

	st.Push(7)
	fmt.Printf("After pushing 7:\n%s", st)
	st.Clear()
	fmt.Printf("After clearing:\n%s", st)
	for i := 1; i <= 4; i++ {
		st.Push(i)
		fmt.Printf("After pushing %d:\n%s", i, st)
	}

	fs := stack.NewClassicZero[float64]()
	fs.Push(10.0)
	fmt.Printf("After pushing 10.0:\n%s", fs)
	if err := stack.Ln[float64](fs); err != nil {
		return err
	}
	fmt.Printf("After computing ln:\n%s", fs)
	fs.Push(10.0)
	fmt.Printf("After pushing 10.0:\n%s", fs)
	if err := stack.Multiply[float64](fs); err != nil {
		return err
	}
	fmt.Printf("After multiplying:\n%s", fs)

	return nil
}

var cli struct {
	Debug bool `short:"D" name:"debug" help:"Enable debug logging."`

	Repl ReplCmd `cmd:"" name:"repl" help:"Start an interactive RPN loop."`
	Demo DemoCmd `cmd:"" name:"demo" help:"Walk a stack through every operation."`
}

func newLogger(debug bool) *zap.SugaredLogger {
	if !debug {
		return zap.NewNop().Sugar()
	}
	logger, _ := zap.NewDevelopment()
	return logger.Sugar()
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run(&Context{Debug: cli.Debug, Log: newLogger(cli.Debug)})
	ctx.FatalIfErrorf(err)
}
