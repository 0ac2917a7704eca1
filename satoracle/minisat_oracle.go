package satoracle

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// MinisatOracle decides satisfiability by invoking the minisat binary as a
// subprocess — the slowest of the three oracles (process spawn overhead
// per call) but the one with the fewest linked dependencies, used as a
// fallback when GiniOracle is unavailable.
type MinisatOracle struct {
	// BinaryPath is the minisat executable to invoke. Defaults to
	// "minisat" (resolved via PATH) when empty.
	BinaryPath string
}

func (m MinisatOracle) binary() string {
	if m.BinaryPath != "" {
		return m.BinaryPath
	}
	return "minisat"
}

// Sat writes f as a DIMACS CNF file, runs minisat against it, and parses
// the verdict from minisat's result file.
func (m MinisatOracle) Sat(f symbolic.CNF) (bool, error) {
	inFile, err := os.CreateTemp("", "mhgraphsat-*.cnf")
	if err != nil {
		return false, fmt.Errorf("satoracle: %w", err)
	}
	defer os.Remove(inFile.Name())
	defer inFile.Close()

	clauses := f.Clauses()
	fmt.Fprintf(inFile, "p cnf %d %d\n", len(variablesOf(f)), len(clauses))
	for _, c := range clauses {
		for _, l := range c.Literals() {
			n, ok := l.IntValue()
			if !ok {
				return false, ErrOracleFailed
			}
			fmt.Fprintf(inFile, "%d ", n)
		}
		fmt.Fprint(inFile, "0\n")
	}
	if err := inFile.Close(); err != nil {
		return false, fmt.Errorf("satoracle: %w", err)
	}

	outFile, err := os.CreateTemp("", "mhgraphsat-*.out")
	if err != nil {
		return false, fmt.Errorf("satoracle: %w", err)
	}
	defer os.Remove(outFile.Name())
	outFile.Close()

	cmd := exec.CommandContext(context.Background(), m.binary(), inFile.Name(), outFile.Name())
	// minisat exits nonzero for both SAT and UNSAT verdicts in some
	// builds; the verdict lives in the result file, not the exit code.
	_ = cmd.Run()

	f2, err := os.Open(outFile.Name())
	if err != nil {
		return false, fmt.Errorf("satoracle: %w", err)
	}
	defer f2.Close()

	scanner := bufio.NewScanner(f2)
	if !scanner.Scan() {
		return false, ErrOracleFailed
	}
	switch strings.TrimSpace(scanner.Text()) {
	case "SAT":
		return true, nil
	case "UNSAT":
		return false, nil
	default:
		return false, ErrOracleFailed
	}
}
