package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/SolHunter/pkg/generator/solana"
)

// PromptPrefixes asks for prefixes until at least one valid one is entered.
// Several prefixes may be given separated by spaces or commas.
// Invalid entries are reported and skipped.
func PromptPrefixes(in io.Reader) ([]string, error) {
	reader := bufio.NewReader(in)

	fmt.Fprintf(Out, "    %s🎯 TARGET PREFIXES%s\n", ColorPurple+ColorBold, ColorReset)
	for {
		fmt.Fprintf(Out, "    %sPrefix%s (...): ", ColorCyan, ColorReset)
		line, err := reader.ReadString('\n')
		prefixes := parsePrefixes(line)
		if len(prefixes) > 0 {
			return prefixes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read prefixes: %w", err)
		}
		fmt.Fprintf(Out, "    %s✗ Must specify at least one prefix!%s\n", ColorRed, ColorReset)
	}
}

func parsePrefixes(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	var prefixes []string
	for _, p := range fields {
		if err := solana.ValidatePrefix(p); err != nil {
			fmt.Fprintf(Out, "    %s⚠ %v%s\n", ColorRed, err, ColorReset)
			continue
		}
		prefixes = append(prefixes, p)
	}
	return prefixes
}
