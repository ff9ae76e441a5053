// nz65x64-debug is an interactive single-step debugger for the 65x64
// core: space/j executes one instruction, q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nozotech/emu65x64/cpu"
	"github.com/nozotech/emu65x64/disassemble"
	"github.com/nozotech/emu65x64/memory"
)

var (
	rom     = flag.String("rom", "", "path to the ROM image loaded above RAM")
	ramSize = flag.Int("ram_size", 0x10000, "size in bytes of the RAM region below the ROM")
	memMask = flag.Uint64("mem_mask", 0xFFFFFFFF, "address mask applied to every memory access")
)

type model struct {
	cpu *cpu.CPU
	mem memory.Bank

	prevPC uint64
	lines  []string
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC
			line := disassemble.One(m.mem, m.cpu.PC, m.cpu.P, m.cpu.E)
			m.cpu.Step()
			m.lines = append(m.lines, line.String())
			if len(m.lines) > 20 {
				m.lines = m.lines[len(m.lines)-20:]
			}
		}
	}
	return m, nil
}

func (m model) status() string {
	var flags strings.Builder
	for _, bit := range []byte{cpu.PNegative, cpu.POverflow, cpu.PMemory, cpu.PIndex, cpu.PDecimal, cpu.PIRQDis, cpu.PZero, cpu.PCarry} {
		if m.cpu.P&bit != 0 {
			flags.WriteByte('*')
		} else {
			flags.WriteByte('.')
		}
	}
	return fmt.Sprintf(
		"PC: %016X (was %016X)\nA:  %016X\nX:  %016X\nY:  %016X\nSP: %016X\nP:  %s (N V M X D I Z C)\nE:  %t  stopped: %t  cycles: %d",
		m.cpu.PC, m.prevPC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP, flags.String(), m.cpu.E, m.cpu.IsStopped(), m.cpu.GetCycles(),
	)
}

func (m model) View() string {
	history := strings.Join(m.lines, "\n")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("nz65x64-debug  (space/j: step, q: quit)"),
		"",
		m.status(),
		"",
		history,
	)
}

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatalf("nz65x64-debug: -rom is required")
	}

	romBytes, err := os.ReadFile(*rom)
	if err != nil {
		log.Fatalf("nz65x64-debug: reading %q: %v", *rom, err)
	}

	mem, err := memory.NewSystem(*memMask, *ramSize, romBytes)
	if err != nil {
		log.Fatalf("nz65x64-debug: %v", err)
	}

	c := cpu.New(mem)
	c.Reset(false, nil)

	m := model{cpu: c, mem: mem}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("nz65x64-debug: %v", err)
	}
}
