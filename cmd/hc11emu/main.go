// Command hc11emu assembles and runs 68HC11 source programs. It is the
// external collaborator the core hc11 package expects but does not
// implement itself: argument parsing, file I/O, the dump pretty-printer,
// and the interactive single-step shell all live here.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tkossen/hc11emu/hc11"
	"github.com/tkossen/hc11emu/hc11/asmfmt"
)

var log = logrus.New()

var (
	flagStep     bool
	flagDump     bool
	flagReadable bool
)

func main() {
	root := &cobra.Command{
		Use:   "hc11emu [file]",
		Short: "Assemble and run a 68HC11 source program",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVarP(&flagStep, "step", "s", false, "drop into the interactive single-step shell before running")
	root.Flags().BoolVarP(&flagDump, "dump", "d", false, "dump memory after the program halts")
	root.Flags().BoolVarP(&flagReadable, "readable", "r", false, "render the dump with register and status annotations")

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: false})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		fault := hc11.NewIOFault(err, "reading %s", path)
		log.WithFields(logrus.Fields{"kind": fault.Kind}).Error(fault.Error())
		os.Exit(1)
	}

	state, fault := hc11.Assemble(string(src))
	if fault != nil {
		log.WithFields(logrus.Fields{"kind": fault.Kind, "line": fault.Line}).Error(fault.Error())
		os.Exit(1)
	}
	log.Infof("assembled %s, entry point 0x%04X, %d labels", path, state.PC, len(state.Labels))

	engine := hc11.NewEngine(state)

	if flagStep {
		runShell(engine)
	} else if fault := engine.Run(); fault != nil {
		log.WithFields(logrus.Fields{"kind": fault.Kind, "pc": fmt.Sprintf("0x%04X", fault.PC)}).Error(fault.Error())
		os.Exit(1)
	}

	if flagDump {
		printDump(state)
	}
	return nil
}

func printDump(s *hc11.State) {
	if flagReadable {
		fmt.Println(asmfmt.Registers(s))
		fmt.Println(asmfmt.Status(s))
		fmt.Println(asmfmt.Ports(s))
		fmt.Print(asmfmt.Labels(s))
	}
	fmt.Print(asmfmt.DumpRange(s, 0, 0x10000, flagReadable))
}

// runShell drives the interactive single-step commands documented in
// spec §6: ra/rb/rd inspect accumulators, next N executes N instructions,
// prev N restores the machine state saved before each of the last N steps,
// status/pc/sp/labels/ports print machine state, and unrecognized input
// executes one instruction.
func runShell(e *hc11.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	history := []hc11.State{}

	for !e.State.Halted() {
		fmt.Printf("(hc11) PC=%04X> ", e.State.PC)
		if !scanner.Scan() {
			return
		}
		cmd := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(cmd) == 0 {
			stepOnce(e, &history)
			continue
		}

		switch strings.ToLower(cmd[0]) {
		case "ra":
			fmt.Printf("A = 0x%02X\n", e.State.A)
		case "rb":
			fmt.Printf("B = 0x%02X\n", e.State.B)
		case "rd":
			fmt.Printf("D = 0x%04X\n", e.State.D())
		case "pc":
			fmt.Printf("PC = 0x%04X\n", e.State.PC)
		case "sp":
			fmt.Printf("SP = 0x%04X\n", e.State.SP)
		case "status":
			fmt.Println(asmfmt.Status(e.State))
		case "labels":
			fmt.Print(asmfmt.Labels(e.State))
		case "ports":
			fmt.Println(asmfmt.Ports(e.State))
		case "next":
			n := 1
			if len(cmd) == 2 {
				if v, err := strconv.Atoi(cmd[1]); err == nil {
					n = v
				}
			}
			for i := 0; i < n && !e.State.Halted(); i++ {
				stepOnce(e, &history)
			}
		case "prev":
			n := 1
			if len(cmd) == 2 {
				if v, err := strconv.Atoi(cmd[1]); err == nil {
					n = v
				}
			}
			for i := 0; i < n && len(history) > 0; i++ {
				*e.State = history[len(history)-1]
				history = history[:len(history)-1]
			}
		default:
			// Unrecognized input resumes single-stepping, per spec §6.
			stepOnce(e, &history)
		}
	}
	fmt.Println("halted")
}

func stepOnce(e *hc11.Engine, history *[]hc11.State) {
	*history = append(*history, *e.State)
	if fault := e.Step(); fault != nil {
		log.WithFields(logrus.Fields{"kind": fault.Kind, "pc": fmt.Sprintf("0x%04X", fault.PC)}).Error(fault.Error())
	}
}
