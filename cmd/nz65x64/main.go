// nz65x64 loads a flat ROM image, wires it into a 65x64 machine, and
// steps the processor until it halts (WDM $FF) or a step limit is
// reached, optionally emitting a trace line per instruction.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/nozotech/emu65x64/cpu"
	"github.com/nozotech/emu65x64/internal/hostio"
	"github.com/nozotech/emu65x64/memory"
)

var (
	rom               = flag.String("rom", "", "path to the ROM image loaded above RAM")
	ramSize           = flag.Int("ram_size", 0x10000, "size in bytes of the RAM region below the ROM")
	memMask           = flag.Uint64("mem_mask", 0xFFFFFFFF, "address mask applied to every memory access")
	trace             = flag.Bool("trace", false, "echo every trace line to stderr as it executes")
	maxSteps          = flag.Uint64("max_steps", 0, "stop after this many instructions (0 = run until halted)")
	entry             = flag.Uint64("entry", 0, "override the reset-vector entry point; 0 uses the ROM's own vector")
	instructionBuffer = flag.Int("instruction_buffer", 40, "number of trailing trace lines kept for a postmortem dump on a WDM $FF halt")
)

func main() {
	flag.Parse()
	if *rom == "" {
		log.Fatalf("nz65x64: -rom is required")
	}

	romBytes, err := os.ReadFile(*rom)
	if err != nil {
		log.Fatalf("nz65x64: reading %q: %v", *rom, err)
	}

	mem, err := memory.NewSystem(*memMask, *ramSize, romBytes)
	if err != nil {
		log.Fatalf("nz65x64: %v", err)
	}

	c := cpu.New(mem)
	c.Console = &hostio.Console{Out: os.Stdout, In: os.Stdin}

	var mirror io.Writer
	if *trace {
		mirror = os.Stderr
	}
	ring := newTraceRing(*instructionBuffer, mirror)
	// Trace is always on internally so the ring buffer has something to
	// dump on a halt, even when -trace was not requested.
	c.Reset(true, ring)
	if *entry != 0 {
		c.SetPC(*entry)
	}

	c.Run(*maxSteps)

	if c.IsStopped() {
		ring.dump(os.Stderr)
	}
	log.Printf("nz65x64: halted after %d cycles at PC=%016X", c.GetCycles(), c.PC)
}
