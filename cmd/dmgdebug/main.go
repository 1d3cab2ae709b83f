// Command dmgdebug is an interactive single-step console debugger:
// raw-mode stdin (golang.org/x/term) so keystrokes land without line
// buffering, driving a dmgcore.Machine one instruction or one frame
// at a time.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dmg83/dmgcore/dmgcore"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dmgdebug <rom-path>")
		os.Exit(1)
	}

	rom, err := dmgcore.LoadROM(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmgdebug: %v\n", err)
		os.Exit(1)
	}

	m := dmgcore.NewMachine(rom, nil)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal (e.g. piped input in a test harness) — fall
		// back to line-buffered commands instead of raw keystrokes.
		runLineMode(m)
		return
	}
	defer term.Restore(fd, oldState)

	printHelp()
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n == 0 || err != nil {
			return
		}
		if !handleCommand(m, buf[0]) {
			return
		}
	}
}

func printHelp() {
	fmt.Fprint(os.Stderr, "dmgdebug: s=step  f=frame  r=registers  q=quit\r\n")
}

// handleCommand executes one debugger keystroke. It returns false
// when the session should end.
func handleCommand(m *dmgcore.Machine, b byte) bool {
	switch b {
	case 's':
		dots := m.StepInstruction()
		fmt.Fprintf(os.Stderr, "stepped %d dots, PC=%#04x\r\n", dots, m.CPU.PC)
	case 'f':
		m.RunFrame()
		fmt.Fprintf(os.Stderr, "frame done, PC=%#04x LY=%d\r\n", m.CPU.PC, m.PPU.LY)
	case 'r':
		printRegisters(m.CPU)
	case 'q', 3: // 3 = Ctrl-C under raw mode
		return false
	}
	return true
}

func printRegisters(c *dmgcore.CPU) {
	fmt.Fprintf(os.Stderr,
		"A=%02x F=%02x BC=%04x DE=%04x HL=%04x SP=%04x PC=%04x\r\n",
		c.A, c.F, c.BC(), c.DE(), c.HL(), c.SP, c.PC)
}

// runLineMode is the non-terminal fallback: one command per line.
func runLineMode(m *dmgcore.Machine) {
	printHelp()
	var cmd string
	for {
		if _, err := fmt.Scanln(&cmd); err != nil {
			return
		}
		if len(cmd) == 0 || !handleCommand(m, cmd[0]) {
			return
		}
	}
}
